package persistence

import (
	"context"
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// ReferralWithUser is a referral joined with the referred user's public details
type ReferralWithUser struct {
	Referral         *entity.Referral
	ReferredUsername string
	ReferredSignupAt time.Time
}

// LeaderboardEntry aggregates a referrer's active referrals
type LeaderboardEntry struct {
	ReferrerID       uint64
	Username         string
	TotalReferrals   int64
	TotalEarnedCents int64
}

// ReferralRepository defines the persistence operations for referrals
type ReferralRepository interface {
	// Create persists a new pending referral
	//
	// Possible errors:
	// - ErrDuplicateReferral: If the referred user already has a referral (unique index)
	// - ErrConstraintViolation: If a reference is invalid
	Create(ctx context.Context, referral *entity.Referral) error

	// GetByReferredID retrieves the referral for a referred user
	//
	// Possible errors:
	// - ErrReferralNotFound: If no referral exists for the user
	GetByReferredID(ctx context.Context, referredUserID uint64) (*entity.Referral, error)

	// ClaimPending atomically flips the referred user's pending referral to
	// active, recording the purchase price and reward. The status filter is
	// the idempotence guard: a referral that is no longer pending cannot be
	// claimed again.
	//
	// Possible errors:
	// - ErrNoPendingReferral: If no pending referral exists for the user
	ClaimPending(ctx context.Context, referredUserID uint64, priceCents, rewardCents int64) (*entity.Referral, error)

	// CountByStatus counts a referrer's referrals grouped by status
	CountByStatus(ctx context.Context, referrerID uint64) (map[entity.ReferralStatus]int64, error)

	// ListByReferrer returns a page of a referrer's referrals with the
	// referred users' details, newest first, plus the total count
	ListByReferrer(ctx context.Context, referrerID uint64, page, limit int) ([]ReferralWithUser, int64, error)

	// Leaderboard aggregates active referrals by referrer, ordered by total
	// earnings descending, truncated to limit
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}
