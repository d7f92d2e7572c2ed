package entity

import (
	"time"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
)

// ReferralStatus represents the lifecycle state of a referral
type ReferralStatus string

// Referral statuses. ReferralStatusRewarded exists in stored data but
// nothing transitions into it; ReferralStatusActive is the terminal state
// in practice.
const (
	ReferralStatusPending  ReferralStatus = "pending"
	ReferralStatusActive   ReferralStatus = "active"
	ReferralStatusRewarded ReferralStatus = "rewarded"
)

// IsValidReferralStatus validates a referral status value
func IsValidReferralStatus(status string) bool {
	switch ReferralStatus(status) {
	case ReferralStatusPending, ReferralStatusActive, ReferralStatusRewarded:
		return true
	default:
		return false
	}
}

// Referral links a referrer to a user they invited. At most one referral
// exists per referred user; the reward fields are denormalized copies of
// the audit transaction for reporting.
type Referral struct {
	ID                  uint64
	ReferrerID          uint64
	ReferredUserID      uint64
	Status              ReferralStatus
	CodeUsed            string
	RewardCents         int64
	ChallengePriceCents int64
	ChallengePurchased  bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewReferral creates a pending referral for a newly signed-up user
func NewReferral(referrerID, referredUserID uint64, codeUsed string, timeProvider coreport.TimeProvider) (*Referral, error) {
	if referrerID == 0 || referredUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if referrerID == referredUserID {
		return nil, errs.ErrSelfReferral
	}
	if !IsValidReferralCode(codeUsed) {
		return nil, errs.ErrInvalidReferralCode
	}

	now := timeProvider.Now()
	return &Referral{
		ReferrerID:     referrerID,
		ReferredUserID: referredUserID,
		Status:         ReferralStatusPending,
		CodeUsed:       codeUsed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// IsPending reports whether the referral is still waiting for the referred
// user's first challenge purchase
func (r *Referral) IsPending() bool {
	return r.Status == ReferralStatusPending
}

// Activate records the referred user's first challenge purchase and the
// computed reward. Only a pending referral can be activated; a second
// activation attempt is rejected, which is what makes the reward flow a
// no-op when invoked twice.
func (r *Referral) Activate(priceCents, rewardCents int64, timeProvider coreport.TimeProvider) error {
	if r.Status != ReferralStatusPending {
		return errs.ErrReferralAlreadyProcessed
	}
	if priceCents <= 0 {
		return errs.ErrInvalidAmount
	}

	r.Status = ReferralStatusActive
	r.ChallengePurchased = true
	r.ChallengePriceCents = priceCents
	r.RewardCents = rewardCents
	r.UpdatedAt = timeProvider.Now()
	return nil
}
