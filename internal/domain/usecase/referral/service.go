package referral

import (
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/domain/port/persistence"
)

// Config holds the referral reward parameters
type Config struct {
	// RewardPercent is the referrer's share of the challenge price
	RewardPercent int64
	// AssumedChallengePriceCents is used only for the pending-earnings
	// estimate, since the actual reward depends on the price the referred
	// user eventually picks
	AssumedChallengePriceCents int64
	// ReferralLinkBase is the frontend URL referral links are built on
	ReferralLinkBase string
	// LeaderboardLimit is the default leaderboard size
	LeaderboardLimit int
}

// DefaultConfig returns the production reward parameters
func DefaultConfig() Config {
	return Config{
		RewardPercent:              50,
		AssumedChallengePriceCents: 10000, // 100.00
		ReferralLinkBase:           "https://app.fundedpeak.com",
		LeaderboardLimit:           10,
	}
}

// Service implements the referral use case: code validation, signup-time
// registration, reward processing, and reporting
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	referralRepo persistence.ReferralRepository
	txRepo       persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a referral service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	referralRepo persistence.ReferralRepository,
	txRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	if cfg.RewardPercent <= 0 {
		cfg.RewardPercent = DefaultConfig().RewardPercent
	}
	if cfg.AssumedChallengePriceCents <= 0 {
		cfg.AssumedChallengePriceCents = DefaultConfig().AssumedChallengePriceCents
	}
	if cfg.ReferralLinkBase == "" {
		cfg.ReferralLinkBase = DefaultConfig().ReferralLinkBase
	}
	if cfg.LeaderboardLimit <= 0 {
		cfg.LeaderboardLimit = DefaultConfig().LeaderboardLimit
	}

	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		referralRepo: referralRepo,
		txRepo:       txRepo,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// normalizePage clamps pagination parameters to sane bounds
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// totalPages computes the page count for a result set
func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
