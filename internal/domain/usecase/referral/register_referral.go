package referral

import (
	"context"
	"fmt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// RegisterReferral validates the code and creates a pending referral for a
// newly signed-up user. The data layer's unique index on the referred user
// backs up the duplicate check here, so a concurrent double submission
// cannot produce two records.
func (s *Service) RegisterReferral(ctx context.Context, code string, newUserID uint64) (*usecase.ReferralRegistration, error) {
	referrer, err := s.resolveReferrer(ctx, code, newUserID)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		return nil, fmt.Errorf("referral code is required")
	}

	referral, err := entity.NewReferral(referrer.ID, newUserID, code, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.referralRepo.Create(ctx, referral); err != nil {
		s.logger.Error("Failed to create referral", map[string]any{
			"referrer_id":      referrer.ID,
			"referred_user_id": newUserID,
			"error":            err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Referral registered", map[string]any{
		"referral_id":      referral.ID,
		"referrer_id":      referrer.ID,
		"referred_user_id": newUserID,
		"code":             code,
	})

	return &usecase.ReferralRegistration{
		ReferralID:       referral.ID,
		ReferrerUsername: referrer.Username,
	}, nil
}
