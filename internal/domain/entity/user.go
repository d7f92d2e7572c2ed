package entity

import (
	"time"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
)

// User represents a portal account with a wallet balance
type User struct {
	ID            uint64
	Username      string
	WalletAddress string
	PasswordHash  string     // Empty for wallet-only accounts
	ReferralCode  string     // 8 uppercase hex chars, unique across users
	balanceCents  int64      // Wallet balance in cents (private, never negative)
	IsAdmin       bool
	IsActive      bool
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new active user with a zero balance
func NewUser(username, walletAddress, referralCode string, timeProvider coreport.TimeProvider) (*User, error) {
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if walletAddress == "" {
		return nil, errs.ErrInvalidWalletAddress
	}
	if !IsValidReferralCode(referralCode) {
		return nil, errs.ErrInvalidReferralCode
	}

	now := timeProvider.Now()
	return &User{
		Username:      username,
		WalletAddress: walletAddress,
		ReferralCode:  referralCode,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// WalletBalance returns the current balance in cents
func (u *User) WalletBalance() int64 {
	return u.balanceCents
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balanceCents)
}

// SetWalletBalance updates the balance directly
func (u *User) SetWalletBalance(cents int64, timeProvider coreport.TimeProvider) {
	u.balanceCents = cents
	u.UpdatedAt = timeProvider.Now()
}

// HydrateBalance sets the balance without touching timestamps,
// for repositories reconstructing an entity from storage
func (u *User) HydrateBalance(cents int64) {
	u.balanceCents = cents
}

// CanWithdraw checks whether the balance covers a withdrawal of the given amount
func (u *User) CanWithdraw(amountCents int64) bool {
	return amountCents > 0 && u.balanceCents >= amountCents
}

// Credit adds the amount to the wallet balance
func (u *User) Credit(amountCents int64, timeProvider coreport.TimeProvider) {
	u.balanceCents += amountCents
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the wallet balance.
// Returns an error when the balance would go negative.
func (u *User) Debit(amountCents int64, timeProvider coreport.TimeProvider) error {
	if u.balanceCents < amountCents {
		return errs.ErrInsufficientBalance
	}
	u.balanceCents -= amountCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// TouchLogin records a successful login
func (u *User) TouchLogin(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}
