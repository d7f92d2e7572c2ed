package model

import (
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// Referral is the gorm model for the referrals table. The unique index on
// referred_user_id guarantees at most one referral per referred user.
type Referral struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement"`
	ReferrerID         uint64    `gorm:"not null;index:idx_referrals_referrer_id"`
	ReferredUserID     uint64    `gorm:"not null;uniqueIndex:idx_referrals_referred_user_id"`
	Status             string    `gorm:"size:16;not null;default:'pending';index:idx_referrals_status"`
	CodeUsed           string    `gorm:"size:16;not null"`
	RewardAmount       int64     `gorm:"not null;default:0"`
	ChallengePrice     int64     `gorm:"not null;default:0"`
	ChallengePurchased bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName overrides the gorm table name
func (Referral) TableName() string {
	return "referrals"
}

// ToEntity converts the database row to a domain referral
func (r *Referral) ToEntity() *entity.Referral {
	return &entity.Referral{
		ID:                  r.ID,
		ReferrerID:          r.ReferrerID,
		ReferredUserID:      r.ReferredUserID,
		Status:              entity.ReferralStatus(r.Status),
		CodeUsed:            r.CodeUsed,
		RewardCents:         r.RewardAmount,
		ChallengePriceCents: r.ChallengePrice,
		ChallengePurchased:  r.ChallengePurchased,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ReferralFromEntity converts a domain referral to its database row
func ReferralFromEntity(referral *entity.Referral) *Referral {
	return &Referral{
		ID:                 referral.ID,
		ReferrerID:         referral.ReferrerID,
		ReferredUserID:     referral.ReferredUserID,
		Status:             string(referral.Status),
		CodeUsed:           referral.CodeUsed,
		RewardAmount:       referral.RewardCents,
		ChallengePrice:     referral.ChallengePriceCents,
		ChallengePurchased: referral.ChallengePurchased,
		CreatedAt:          referral.CreatedAt,
		UpdatedAt:          referral.UpdatedAt,
	}
}
