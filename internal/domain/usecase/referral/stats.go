package referral

import (
	"context"
	"fmt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// GetReferralStats aggregates a referrer's counts and earnings. Earned
// totals come from the completed referral_reward transactions, which are
// the source of truth for money movement; the per-referral reward fields
// are only a reporting cache.
func (s *Service) GetReferralStats(ctx context.Context, userID uint64) (*usecase.ReferralStats, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	counts, err := s.referralRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalEarnedCents, err := s.txRepo.SumCompletedByType(ctx, userID, entity.TypeReferralReward)
	if err != nil {
		return nil, err
	}

	pending := counts[entity.ReferralStatusPending]
	active := counts[entity.ReferralStatusActive]
	rewarded := counts[entity.ReferralStatusRewarded]

	// Estimate only: the real reward depends on the challenge price the
	// referred user eventually buys
	pendingEarningsCents := pending * entity.RewardCents(s.cfg.AssumedChallengePriceCents, s.cfg.RewardPercent)

	return &usecase.ReferralStats{
		TotalReferrals:    pending + active + rewarded,
		PendingReferrals:  pending,
		ActiveReferrals:   active,
		RewardedReferrals: rewarded,
		TotalEarned:       entity.FormatCents(totalEarnedCents),
		PendingEarnings:   entity.FormatCents(pendingEarningsCents),
	}, nil
}

// GetReferralCode returns the caller's code, shareable link and balance
func (s *Service) GetReferralCode(ctx context.Context, userID uint64) (*usecase.ReferralCodeInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.ReferralCodeInfo{
		ReferralCode:  user.ReferralCode,
		ReferralLink:  fmt.Sprintf("%s/?ref=%s", s.cfg.ReferralLinkBase, user.ReferralCode),
		WalletBalance: user.FormattedBalance(),
	}, nil
}
