package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

// Login verifies a password login by wallet address. Wallet-only accounts
// (no password hash) cannot log in this way; the wallet-signature flow is
// handled by an external collaborator.
func (s *Service) Login(ctx context.Context, walletAddress, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByWalletAddress(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Failed login attempt", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	user.TouchLogin(s.timeProvider)
	if err := s.userRepo.Update(ctx, user); err != nil {
		// Login still succeeds; the timestamp is best effort
		s.logger.Warn("Failed to record login time", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}

	return user, nil
}

// GetByID returns the user for an authenticated id
func (s *Service) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.userRepo.GetByID(ctx, userID)
}
