package usecase

import (
	"context"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// RegisterRequest carries a signup submission
type RegisterRequest struct {
	Username      string
	WalletAddress string
	Password      string // Optional; wallet-only accounts have none
}

// UserUseCase defines account-level business operations
type UserUseCase interface {
	// Register creates a new user with a freshly generated referral code,
	// retrying generation on collision up to a bounded limit
	Register(ctx context.Context, req RegisterRequest) (*entity.User, error)

	// Login verifies credentials by wallet address and password, and
	// records the login time
	Login(ctx context.Context, walletAddress, password string) (*entity.User, error)

	// GetByID returns the user for an authenticated id
	GetByID(ctx context.Context, userID uint64) (*entity.User, error)
}
