package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-write flows (reward credit, withdrawal)
// across repositories inside a single database transaction, so a partial
// balance change without its audit record can never be observed
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetReferralRepository returns a referral repository bound to the current transaction
	GetReferralRepository(ctx context.Context) ReferralRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository
}
