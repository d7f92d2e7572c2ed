package referral

import (
	"context"
	"errors"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// resolveReferrer runs the validation rules for using a referral code and
// returns the referrer on success. Side-effect free.
//
// Rules, in order:
//   - empty code is valid (referral is optional), referrer is nil
//   - unknown code -> ErrInvalidReferralCode
//   - code owned by the new user -> ErrSelfReferral
//   - new user already has a referral record, any status -> ErrDuplicateReferral
func (s *Service) resolveReferrer(ctx context.Context, code string, newUserID uint64) (*entity.User, error) {
	if newUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if code == "" {
		return nil, nil
	}

	referrer, err := s.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidReferralCode) || errors.Is(err, errs.ErrUserNotFound) {
			return nil, errs.ErrInvalidReferralCode
		}
		return nil, err
	}

	if referrer.ID == newUserID {
		return nil, errs.ErrSelfReferral
	}

	_, err = s.referralRepo.GetByReferredID(ctx, newUserID)
	if err == nil {
		return nil, errs.ErrDuplicateReferral
	}
	if !errors.Is(err, errs.ErrReferralNotFound) {
		return nil, err
	}

	return referrer, nil
}

// ValidateReferralCode checks a referral code for a new user without
// creating anything
func (s *Service) ValidateReferralCode(ctx context.Context, code string, newUserID uint64) (*usecase.CodeValidation, error) {
	referrer, err := s.resolveReferrer(ctx, code, newUserID)
	if err != nil {
		if errs.IsValidationError(err) || errors.Is(err, errs.ErrInvalidReferralCode) {
			return &usecase.CodeValidation{Valid: false, Reason: err.Error()}, nil
		}
		return nil, err
	}

	if referrer == nil {
		// No code supplied
		return &usecase.CodeValidation{Valid: true}, nil
	}

	return &usecase.CodeValidation{
		Valid:            true,
		ReferrerID:       referrer.ID,
		ReferrerUsername: referrer.Username,
	}, nil
}
