package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// Register creates a new user with a generated referral code. A code
// collision regenerates and retries up to maxCodeAttempts; any other
// uniqueness conflict (username, wallet address) fails immediately.
func (s *Service) Register(ctx context.Context, req usecase.RegisterRequest) (*entity.User, error) {
	username := strings.TrimSpace(req.Username)
	walletAddress := strings.TrimSpace(req.WalletAddress)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if walletAddress == "" {
		return nil, errs.ErrInvalidWalletAddress
	}

	// Precheck for a friendlier conflict error; the unique index still
	// backs this up against a concurrent signup
	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, errs.ErrDuplicateUser
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	var passwordHash string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := entity.GenerateReferralCode()
		if err != nil {
			return nil, err
		}

		user, err := entity.NewUser(username, walletAddress, code, s.timeProvider)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = passwordHash

		err = s.userRepo.Create(ctx, user)
		if err == nil {
			s.logger.Info("User registered", map[string]any{
				"user_id":       user.ID,
				"username":      username,
				"referral_code": code,
			})
			return user, nil
		}

		if errors.Is(err, errs.ErrDuplicateReferralCode) {
			s.logger.Warn("Referral code collision, regenerating", map[string]any{
				"attempt": attempt,
				"code":    code,
			})
			continue
		}
		return nil, err
	}

	s.logger.Error("Referral code generation exhausted", map[string]any{
		"username": username,
		"attempts": maxCodeAttempts,
	})
	return nil, errs.ErrReferralCodeExhausted
}
