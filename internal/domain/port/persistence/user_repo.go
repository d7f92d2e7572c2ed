package persistence

import (
	"context"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByUsername retrieves a user by their unique username
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// GetByWalletAddress retrieves a user by their unique wallet address
	GetByWalletAddress(ctx context.Context, walletAddress string) (*entity.User, error)

	// GetByReferralCode resolves a referral code to its owner
	//
	// Possible errors:
	// - ErrInvalidReferralCode: If no user owns the code
	GetByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If username or wallet address already exists
	// - ErrDuplicateReferralCode: If the referral code collides (caller retries with a new code)
	Create(ctx context.Context, user *entity.User) error

	// Update persists mutable user fields (password hash, active flag, last login)
	Update(ctx context.Context, user *entity.User) error

	// AdjustBalance applies a signed delta to the wallet balance as a single
	// conditional update; the balance never goes below zero. Returns the
	// user with the post-adjustment balance.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If the delta would make the balance negative
	AdjustBalance(ctx context.Context, userID uint64, deltaCents int64) (*entity.User, error)
}
