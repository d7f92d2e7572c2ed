package model

import (
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// User is the gorm model for the users table
type User struct {
	ID            uint64     `gorm:"primaryKey;autoIncrement"`
	Username      string     `gorm:"size:64;not null;uniqueIndex:idx_users_username"`
	WalletAddress string     `gorm:"size:128;not null;uniqueIndex:idx_users_wallet_address"`
	PasswordHash  string     `gorm:"size:128"`
	ReferralCode  string     `gorm:"size:16;not null;uniqueIndex:idx_users_referral_code"`
	WalletBalance int64      `gorm:"not null;default:0"`
	IsAdmin       bool       `gorm:"not null;default:false"`
	IsActive      bool       `gorm:"not null;default:true"`
	LastLoginAt   *time.Time `gorm:""`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`
}

// TableName overrides the gorm table name
func (User) TableName() string {
	return "users"
}

// ToEntity converts the database row to a domain user
func (u *User) ToEntity() *entity.User {
	user := &entity.User{
		ID:            u.ID,
		Username:      u.Username,
		WalletAddress: u.WalletAddress,
		PasswordHash:  u.PasswordHash,
		ReferralCode:  u.ReferralCode,
		IsAdmin:       u.IsAdmin,
		IsActive:      u.IsActive,
		LastLoginAt:   u.LastLoginAt,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	user.HydrateBalance(u.WalletBalance)
	return user
}

// UserFromEntity converts a domain user to its database row
func UserFromEntity(user *entity.User) *User {
	return &User{
		ID:            user.ID,
		Username:      user.Username,
		WalletAddress: user.WalletAddress,
		PasswordHash:  user.PasswordHash,
		ReferralCode:  user.ReferralCode,
		WalletBalance: user.WalletBalance(),
		IsAdmin:       user.IsAdmin,
		IsActive:      user.IsActive,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}
