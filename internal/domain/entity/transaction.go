package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
)

// TransactionType classifies a balance-affecting event
type TransactionType string

// Transaction types
const (
	TypeReferralReward    TransactionType = "referral_reward"
	TypeWithdrawal        TransactionType = "withdrawal"
	TypeChallengePurchase TransactionType = "challenge_purchase"
	TypeRefund            TransactionType = "refund"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction statuses
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Transaction is an append-only audit record of a single balance-affecting
// event. Credits carry positive amounts, debits negative ones. After
// creation only Status and Metadata are ever mutated.
type Transaction struct {
	ID          uint64
	UserID      uint64            // Owner of the balance this entry affects
	ReferenceID string            // External identifier, unique per transaction
	AmountCents int64             // Signed, never zero
	Type        TransactionType
	Status      TransactionStatus
	Description string
	RelatedID   *uint64           // Optional link to a referral or user record
	Metadata    map[string]any
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// NewTransaction creates a completed transaction, the default status for
// balance events that settle immediately (e.g. referral rewards).
func NewTransaction(
	userID uint64,
	txType TransactionType,
	amountCents int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountCents == 0 {
		return nil, errs.ErrZeroAmount
	}
	if !isValidTransactionType(txType) {
		return nil, errs.ErrInvalidTransactionType
	}

	now := timeProvider.Now()
	return &Transaction{
		UserID:      userID,
		ReferenceID: uuid.NewString(),
		AmountCents: amountCents,
		Type:        txType,
		Status:      StatusCompleted,
		Description: description,
		Metadata:    map[string]any{},
		CreatedAt:   now,
		ProcessedAt: &now,
	}, nil
}

// NewWithdrawalTransaction creates a pending withdrawal debit. The amount
// is recorded negative; settlement happens out of band via admin
// processing.
func NewWithdrawalTransaction(
	userID uint64,
	amountCents int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if amountCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		UserID:      userID,
		ReferenceID: uuid.NewString(),
		AmountCents: -amountCents,
		Type:        TypeWithdrawal,
		Status:      StatusPending,
		Description: description,
		Metadata:    map[string]any{},
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction increased the user's balance
func (t *Transaction) IsCredit() bool {
	return t.AmountCents > 0
}

// IsDebit returns true if this transaction decreased the user's balance
func (t *Transaction) IsDebit() bool {
	return t.AmountCents < 0
}

// FormattedAmount returns the signed amount as a decimal string
func (t *Transaction) FormattedAmount() string {
	return FormatCents(t.AmountCents)
}

// WithRelated links the transaction to another record (referral, user)
func (t *Transaction) WithRelated(id uint64) *Transaction {
	t.RelatedID = &id
	return t
}

// AddMetadata attaches a key/value pair to the audit trail
func (t *Transaction) AddMetadata(key string, value any) *Transaction {
	if t.Metadata == nil {
		t.Metadata = map[string]any{}
	}
	t.Metadata[key] = value
	return t
}

// SetStatus transitions the transaction to a new status and stamps the
// processing time. The wallet balance is never re-touched here; a failed
// or cancelled withdrawal leaves the earlier debit in place.
func (t *Transaction) SetStatus(status TransactionStatus, timeProvider coreport.TimeProvider) error {
	if !isValidTransactionStatus(status) {
		return errs.ErrInvalidTransactionStatus
	}
	now := timeProvider.Now()
	t.Status = status
	t.ProcessedAt = &now
	return nil
}

func isValidTransactionType(t TransactionType) bool {
	switch t {
	case TypeReferralReward, TypeWithdrawal, TypeChallengePurchase, TypeRefund:
		return true
	default:
		return false
	}
}

func isValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseTransactionStatus validates a raw status string from the API
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	s := TransactionStatus(raw)
	if !isValidTransactionStatus(s) {
		return "", errs.ErrInvalidTransactionStatus
	}
	return s, nil
}
