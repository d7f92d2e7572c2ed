package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/persistence"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/model"
)

// ReferralRepository implements persistence.ReferralRepository on postgres via gorm
type ReferralRepository struct {
	db *gorm.DB
}

// NewReferralRepository creates a referral repository
func NewReferralRepository(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// Create persists a new pending referral
func (r *ReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	row := model.ReferralFromEntity(referral)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapReferralWriteError(err)
	}
	referral.ID = row.ID
	return nil
}

// GetByReferredID retrieves the referral for a referred user
func (r *ReferralRepository) GetByReferredID(ctx context.Context, referredUserID uint64) (*entity.Referral, error) {
	var row model.Referral
	err := r.db.WithContext(ctx).First(&row, "referred_user_id = ?", referredUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrReferralNotFound
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// ClaimPending flips the pending referral to active in one conditional
// update. The status filter makes repeated purchase notifications for the
// same user a no-op: only the first caller sees an affected row.
func (r *ReferralRepository) ClaimPending(ctx context.Context, referredUserID uint64, priceCents, rewardCents int64) (*entity.Referral, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Where("referred_user_id = ? AND status = ?", referredUserID, string(entity.ReferralStatusPending)).
		Updates(map[string]any{
			"status":              string(entity.ReferralStatusActive),
			"challenge_price":     priceCents,
			"reward_amount":       rewardCents,
			"challenge_purchased": true,
			"updated_at":          gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrNoPendingReferral
	}

	return r.GetByReferredID(ctx, referredUserID)
}

// CountByStatus counts a referrer's referrals grouped by status
func (r *ReferralRepository) CountByStatus(ctx context.Context, referrerID uint64) (map[entity.ReferralStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Select("status, COUNT(*) AS count").
		Where("referrer_id = ?", referrerID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, mapDatabaseError(err)
	}

	counts := make(map[entity.ReferralStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.ReferralStatus(row.Status)] = row.Count
	}
	return counts, nil
}

// ListByReferrer returns a page of a referrer's referrals joined with the
// referred users' details, newest first
func (r *ReferralRepository) ListByReferrer(ctx context.Context, referrerID uint64, page, limit int) ([]persistence.ReferralWithUser, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, mapDatabaseError(err)
	}

	type joinedRow struct {
		model.Referral
		ReferredUsername string
		ReferredSignupAt time.Time
	}

	var rows []joinedRow
	err = r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Select("referrals.*, users.username AS referred_username, users.created_at AS referred_signup_at").
		Joins("JOIN users ON users.id = referrals.referred_user_id").
		Where("referrals.referrer_id = ?", referrerID).
		Order("referrals.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, mapDatabaseError(err)
	}

	results := make([]persistence.ReferralWithUser, 0, len(rows))
	for i := range rows {
		results = append(results, persistence.ReferralWithUser{
			Referral:         rows[i].Referral.ToEntity(),
			ReferredUsername: rows[i].ReferredUsername,
			ReferredSignupAt: rows[i].ReferredSignupAt,
		})
	}
	return results, total, nil
}

// Leaderboard aggregates active referrals by referrer, ordered by total
// earnings descending
func (r *ReferralRepository) Leaderboard(ctx context.Context, limit int) ([]persistence.LeaderboardEntry, error) {
	type aggregateRow struct {
		ReferrerID       uint64
		Username         string
		TotalReferrals   int64
		TotalEarnedCents int64
	}

	var rows []aggregateRow
	err := r.db.WithContext(ctx).
		Model(&model.Referral{}).
		Select("referrals.referrer_id, users.username, COUNT(*) AS total_referrals, COALESCE(SUM(referrals.reward_amount), 0) AS total_earned_cents").
		Joins("JOIN users ON users.id = referrals.referrer_id").
		Where("referrals.status = ?", string(entity.ReferralStatusActive)).
		Group("referrals.referrer_id, users.username").
		Order("total_earned_cents DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, mapDatabaseError(err)
	}

	entries := make([]persistence.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, persistence.LeaderboardEntry{
			ReferrerID:       row.ReferrerID,
			Username:         row.Username,
			TotalReferrals:   row.TotalReferrals,
			TotalEarnedCents: row.TotalEarnedCents,
		})
	}
	return entries, nil
}
