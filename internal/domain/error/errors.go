package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance   = 4001
	CodeInvalidAmount         = 4002
	CodeInvalidUserID         = 4003
	CodeSelfReferral          = 4004
	CodeDuplicateReferral     = 4005
	CodeWithdrawalMethod      = 4006
	CodeConstraintViolation   = 4007
	CodeInvalidCredentials    = 4010
	CodeUserNotFound          = 4040
	CodeReferralCodeNotFound  = 4041
	CodeTransactionNotFound   = 4042
	CodeNotAWithdrawal        = 4008
	CodeDuplicateUser         = 4009

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a monetary amount is malformed or out of range
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a supplied amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrZeroAmount is returned when a transaction would carry a zero amount
	ErrZeroAmount = errors.New("amount cannot be zero")

	// ErrInsufficientBalance is returned when the wallet balance does not cover a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidUserID is returned when a user id is missing or zero
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidUsername is returned when the username is empty or malformed
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidWalletAddress is returned when the wallet address is empty
	ErrInvalidWalletAddress = errors.New("invalid wallet address")

	// ErrInvalidReferralCode is returned when a referral code does not resolve to a referrer
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrSelfReferral is returned when a user tries to refer themselves
	ErrSelfReferral = errors.New("cannot refer yourself")

	// ErrDuplicateReferral is returned when the referred user already has a referral record
	ErrDuplicateReferral = errors.New("user already has a referral")

	// ErrNoPendingReferral signals that no pending referral exists for a purchase;
	// this is a normal outcome, not a failure
	ErrNoPendingReferral = errors.New("no pending referral found")

	// ErrReferralAlreadyProcessed is returned when activating a non-pending referral
	ErrReferralAlreadyProcessed = errors.New("referral already processed")

	// ErrReferralNotFound is returned when the requested referral doesn't exist
	ErrReferralNotFound = errors.New("referral not found")

	// ErrDuplicateReferralCode is returned when a generated referral code
	// collides with an existing one; callers regenerate and retry
	ErrDuplicateReferralCode = errors.New("referral code already exists")

	// ErrReferralCodeExhausted is returned when code generation keeps colliding
	// past the bounded retry limit
	ErrReferralCodeExhausted = errors.New("could not generate a unique referral code")

	// ErrWithdrawalMethodRequired is returned when a withdrawal request omits the method
	ErrWithdrawalMethodRequired = errors.New("withdrawal method is required")

	// ErrNotAWithdrawal is returned when admin processing targets a non-withdrawal transaction
	ErrNotAWithdrawal = errors.New("transaction is not a withdrawal")

	// ErrInvalidTransactionType is returned for an unknown transaction type
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionStatus is returned for an unknown transaction status
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when a unique user field already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrZeroAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrSelfReferral):
		return CodeSelfReferral
	case errors.Is(err, ErrDuplicateReferral):
		return CodeDuplicateReferral
	case errors.Is(err, ErrWithdrawalMethodRequired):
		return CodeWithdrawalMethod
	case errors.Is(err, ErrNotAWithdrawal):
		return CodeNotAWithdrawal
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidReferralCode), errors.Is(err, ErrReferralNotFound):
		return CodeReferralCodeNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID         uint64
	RequestedCents int64
	BalanceCents   int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %d cents, available %d cents",
		e.UserID, e.RequestedCents, e.BalanceCents)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"requested_cents": e.RequestedCents,
		"balance_cents":   e.BalanceCents,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, requestedCents, balanceCents int64) error {
	return &InsufficientBalanceError{
		UserID:         userID,
		RequestedCents: requestedCents,
		BalanceCents:   balanceCents,
	}
}

// RewardError wraps a failure inside the referral reward flow with the
// identifiers a reconciliation pass would need
type RewardError struct {
	ReferredUserID uint64
	ReferrerID     uint64
	Reason         string
	Err            error
}

// Error implements the error interface
func (e *RewardError) Error() string {
	return fmt.Sprintf("referral reward failed for referred user %d (referrer %d): %s - %v",
		e.ReferredUserID, e.ReferrerID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RewardError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RewardError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "reward_error",
		"referred_user_id": e.ReferredUserID,
		"referrer_id":      e.ReferrerID,
		"reason":           e.Reason,
		"error":            e.Err.Error(),
		"error_code":       ErrorCode(e.Err),
	}
}

// NewRewardError creates a detailed reward flow error
func NewRewardError(referredUserID, referrerID uint64, reason string, err error) error {
	return &RewardError{
		ReferredUserID: referredUserID,
		ReferrerID:     referrerID,
		Reason:         reason,
		Err:            err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReferralNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsValidationError checks if the error belongs to the 4xx validation family
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrZeroAmount) ||
		errors.Is(err, ErrSelfReferral) ||
		errors.Is(err, ErrDuplicateReferral) ||
		errors.Is(err, ErrWithdrawalMethodRequired) ||
		errors.Is(err, ErrNotAWithdrawal) ||
		errors.Is(err, ErrInsufficientBalance)
}
