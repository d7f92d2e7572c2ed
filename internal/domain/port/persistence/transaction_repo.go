package persistence

import (
	"context"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for the
// append-only transaction ledger
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrConstraintViolation: If the owning user reference is invalid
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists status and metadata changes; amount and type are
	// immutable after creation
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction doesn't exist
	Update(ctx context.Context, transaction *entity.Transaction) error

	// GetByReferenceID retrieves a transaction by its external reference id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction carries the reference
	GetByReferenceID(ctx context.Context, referenceID string) (*entity.Transaction, error)

	// ListByUser returns a page of a user's transactions, newest first,
	// optionally filtered by type, plus the total count
	ListByUser(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]*entity.Transaction, int64, error)

	// SumCompletedByType sums the amounts of a user's completed
	// transactions of the given type, in cents
	SumCompletedByType(ctx context.Context, userID uint64, txType entity.TransactionType) (int64, error)
}
