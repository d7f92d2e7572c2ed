package usecase

import (
	"context"
)

// CodeValidation is the outcome of checking a referral code for a new user.
// Valid with a zero ReferrerID means no code was supplied (referral is
// optional).
type CodeValidation struct {
	Valid            bool
	Reason           string
	ReferrerID       uint64
	ReferrerUsername string
}

// ReferralRegistration reports a signup-time referral creation
type ReferralRegistration struct {
	ReferralID       uint64
	ReferrerUsername string
}

// RewardResult reports the outcome of processing a challenge purchase
// against the buyer's referral. Rewarded is false on the normal
// no-pending-referral path.
type RewardResult struct {
	Rewarded         bool
	Message          string
	ReferrerID       uint64
	ReferrerUsername string
	RewardAmount     string // Formatted, 2 decimal places
	NewBalance       string // Referrer's balance after the credit
}

// ReferralStats aggregates a referrer's counts and earnings
type ReferralStats struct {
	TotalReferrals    int64  `json:"totalReferrals"`
	PendingReferrals  int64  `json:"pendingReferrals"`
	ActiveReferrals   int64  `json:"activeReferrals"`
	RewardedReferrals int64  `json:"rewardedReferrals"`
	TotalEarned       string `json:"totalEarned"`
	PendingEarnings   string `json:"pendingEarnings"` // Estimate, assumes the default challenge price
}

// LeaderboardRow is one referrer on the earnings leaderboard
type LeaderboardRow struct {
	Rank           int    `json:"rank"`
	Username       string `json:"username"`
	TotalReferrals int64  `json:"totalReferrals"`
	TotalEarned    string `json:"totalEarned"`
}

// ReferralCodeInfo is the caller's own code, shareable link and balance
type ReferralCodeInfo struct {
	ReferralCode  string
	ReferralLink  string
	WalletBalance string
}

// ReferralListItem is one referral with referred-user details
type ReferralListItem struct {
	ReferralID       uint64 `json:"referralId"`
	ReferredUsername string `json:"referredUsername"`
	ReferredSignupAt string `json:"referredSignupAt"`
	Status           string `json:"status"`
	RewardAmount     string `json:"rewardAmount"`
	ChallengePrice   string `json:"challengePrice"`
	CreatedAt        string `json:"createdAt"`
}

// Page describes a paginated result set
type Page struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ReferralUseCase defines the referral business operations
type ReferralUseCase interface {
	// ValidateReferralCode checks a code for a new user without side effects
	ValidateReferralCode(ctx context.Context, code string, newUserID uint64) (*CodeValidation, error)

	// RegisterReferral validates the code and creates a pending referral
	RegisterReferral(ctx context.Context, code string, newUserID uint64) (*ReferralRegistration, error)

	// ProcessReferralReward credits the referrer for the referred user's
	// first challenge purchase; a no-op when no pending referral exists
	ProcessReferralReward(ctx context.Context, referredUserID uint64, challengePrice string) (*RewardResult, error)

	// GetReferralCode returns the caller's code, link and balance
	GetReferralCode(ctx context.Context, userID uint64) (*ReferralCodeInfo, error)

	// GetReferralStats returns aggregate counts and earnings for a referrer
	GetReferralStats(ctx context.Context, userID uint64) (*ReferralStats, error)

	// GetReferralLeaderboard returns the top referrers by active earnings
	GetReferralLeaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error)

	// ListReferrals returns a page of the caller's referrals with
	// referred-user details
	ListReferrals(ctx context.Context, userID uint64, page, limit int) ([]ReferralListItem, *Page, error)
}
