package usecase

import (
	"context"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// BalanceInfo is the wallet balance response
type BalanceInfo struct {
	WalletBalance string
	Currency      string
}

// WithdrawalRequest carries a user's withdrawal submission
type WithdrawalRequest struct {
	Amount         string // Positive decimal string
	Method         string // Required, e.g. "bank_transfer", "usdc"
	AccountDetails string // Opaque destination details
}

// WithdrawalResult reports a successfully recorded withdrawal request
type WithdrawalResult struct {
	TransactionID    string // External reference id of the pending transaction
	WithdrawalAmount string
	NewBalance       string
}

// TransactionItem is one ledger entry in a history listing
type TransactionItem struct {
	TransactionID string         `json:"transactionId"`
	Amount        string         `json:"amount"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Description   string         `json:"description"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     string         `json:"createdAt"`
}

// ProcessedWithdrawal reports an admin status update on a withdrawal
type ProcessedWithdrawal struct {
	TransactionID string         `json:"transactionId"`
	Status        string         `json:"status"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// WalletUseCase defines the wallet business operations
type WalletUseCase interface {
	// GetBalance returns the user's current wallet balance
	GetBalance(ctx context.Context, userID uint64) (*BalanceInfo, error)

	// RequestWithdrawal debits the balance and records a pending
	// withdrawal transaction, atomically
	RequestWithdrawal(ctx context.Context, userID uint64, req WithdrawalRequest) (*WithdrawalResult, error)

	// ProcessWithdrawal transitions a withdrawal's status (admin only).
	// The balance is not re-touched: it was debited at request time, and
	// a failed or cancelled outcome does not refund it.
	ProcessWithdrawal(ctx context.Context, referenceID string, status string, adminNote string) (*ProcessedWithdrawal, error)

	// ListTransactions returns a page of the user's transaction history,
	// optionally filtered by type
	ListTransactions(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]TransactionItem, *Page, error)
}
