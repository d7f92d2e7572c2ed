package dto

import "github.com/fundedpeak/portal-api/internal/domain/port/usecase"

// UseReferralCodeRequest is the payload for POST /referral/use
type UseReferralCodeRequest struct {
	UserID       uint64 `json:"userId" binding:"required"`
	ReferralCode string `json:"referralCode" binding:"required"`
}

// UseReferralCodeResponse reports the created pending referral
type UseReferralCodeResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	ReferrerUsername string `json:"referrerUsername,omitempty"`
}

// ReferralCodeResponse is the caller's own code and shareable link
type ReferralCodeResponse struct {
	Success       bool   `json:"success"`
	ReferralCode  string `json:"referralCode"`
	ReferralLink  string `json:"referralLink"`
	WalletBalance string `json:"walletBalance"`
}

// ReferralStatsResponse wraps the aggregate referral stats
type ReferralStatsResponse struct {
	Success bool                   `json:"success"`
	Stats   *usecase.ReferralStats `json:"stats"`
}

// ReferralListResponse is a page of the caller's referrals
type ReferralListResponse struct {
	Success    bool                       `json:"success"`
	Referrals  []usecase.ReferralListItem `json:"referrals"`
	Pagination *usecase.Page              `json:"pagination"`
}

// LeaderboardResponse is the top referrers by earnings
type LeaderboardResponse struct {
	Success     bool                     `json:"success"`
	Leaderboard []usecase.LeaderboardRow `json:"leaderboard"`
}

// ProcessRewardRequest is the payload for POST /referral/process-reward,
// sent by the challenge purchase flow
type ProcessRewardRequest struct {
	UserID         uint64 `json:"userId" binding:"required"`
	ChallengePrice string `json:"challengePrice" binding:"required"`
}

// ProcessRewardResponse reports the reward outcome
type ProcessRewardResponse struct {
	Success          bool   `json:"success"`
	Rewarded         bool   `json:"rewarded"`
	Message          string `json:"message"`
	ReferrerUsername string `json:"referrerUsername,omitempty"`
	RewardAmount     string `json:"rewardAmount,omitempty"`
}
