package referral

import (
	"context"
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// GetReferralLeaderboard returns the top referrers by active-referral
// earnings, descending
func (s *Service) GetReferralLeaderboard(ctx context.Context, limit int) ([]usecase.LeaderboardRow, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardLimit
	}
	if limit > 100 {
		limit = 100
	}

	entries, err := s.referralRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]usecase.LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, usecase.LeaderboardRow{
			Rank:           i + 1,
			Username:       e.Username,
			TotalReferrals: e.TotalReferrals,
			TotalEarned:    entity.FormatCents(e.TotalEarnedCents),
		})
	}
	return rows, nil
}

// ListReferrals returns a page of the caller's referrals with
// referred-user details, newest first
func (s *Service) ListReferrals(ctx context.Context, userID uint64, page, limit int) ([]usecase.ReferralListItem, *usecase.Page, error) {
	if userID == 0 {
		return nil, nil, errs.ErrInvalidUserID
	}
	page, limit = normalizePage(page, limit)

	records, total, err := s.referralRepo.ListByReferrer(ctx, userID, page, limit)
	if err != nil {
		return nil, nil, err
	}

	items := make([]usecase.ReferralListItem, 0, len(records))
	for _, rec := range records {
		items = append(items, usecase.ReferralListItem{
			ReferralID:       rec.Referral.ID,
			ReferredUsername: rec.ReferredUsername,
			ReferredSignupAt: rec.ReferredSignupAt.Format(time.RFC3339),
			Status:           string(rec.Referral.Status),
			RewardAmount:     entity.FormatCents(rec.Referral.RewardCents),
			ChallengePrice:   entity.FormatCents(rec.Referral.ChallengePriceCents),
			CreatedAt:        rec.Referral.CreatedAt.Format(time.RFC3339),
		})
	}

	return items, &usecase.Page{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: totalPages(total, limit),
	}, nil
}
