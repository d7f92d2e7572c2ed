package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository on postgres via gorm
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var row model.User
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// GetByUsername retrieves a user by their unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.User
	err := r.db.WithContext(ctx).First(&row, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// GetByWalletAddress retrieves a user by their unique wallet address
func (r *UserRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*entity.User, error) {
	var row model.User
	err := r.db.WithContext(ctx).First(&row, "wallet_address = ?", walletAddress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// GetByReferralCode resolves a referral code to its owner
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var row model.User
	err := r.db.WithContext(ctx).First(&row, "referral_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvalidReferralCode
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// Create persists a new user and assigns its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.UserFromEntity(user)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapUserWriteError(err)
	}
	user.ID = row.ID
	return nil
}

// Update persists mutable user fields. The wallet balance is excluded;
// balance changes go through AdjustBalance only.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"password_hash": user.PasswordHash,
			"is_active":     user.IsActive,
			"last_login_at": user.LastLoginAt,
			"updated_at":    user.UpdatedAt,
		})
	if result.Error != nil {
		return mapUserWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AdjustBalance applies a signed delta as a single conditional update.
// The WHERE clause keeps the balance from going negative even when two
// debits race; zero rows affected means the guard rejected the change.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID uint64, deltaCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND wallet_balance + ? >= 0", userID, deltaCents).
		Updates(map[string]any{
			"wallet_balance": gorm.Expr("wallet_balance + ?", deltaCents),
			"updated_at":     gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, mapDatabaseError(result.Error)
	}

	if result.RowsAffected == 0 {
		// Refetch to tell a missing user apart from a rejected debit
		if _, err := r.GetByID(ctx, userID); err != nil {
			return nil, err
		}
		return nil, errs.ErrInsufficientBalance
	}

	return r.GetByID(ctx, userID)
}
