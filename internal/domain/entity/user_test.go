package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
)

// fixedTimeProvider returns a constant time, shared by the entity tests
type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func (p *fixedTimeProvider) Since(t time.Time) coreport.Duration {
	return coreport.Duration(p.now.Sub(t))
}

func (p *fixedTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

func testClock() *fixedTimeProvider {
	return &fixedTimeProvider{now: time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)}
}

func TestNewUser(t *testing.T) {
	tp := testClock()

	t.Run("creates an active user with zero balance", func(t *testing.T) {
		user, err := NewUser("trader1", "0xABCDEF0123456789", "A1B2C3D4", tp)

		assert.NoError(t, err)
		assert.Equal(t, "trader1", user.Username)
		assert.Equal(t, "0xABCDEF0123456789", user.WalletAddress)
		assert.Equal(t, "A1B2C3D4", user.ReferralCode)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsAdmin)
		assert.Equal(t, int64(0), user.WalletBalance())
		assert.Equal(t, tp.now, user.CreatedAt)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser("", "0xABC", "A1B2C3D4", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUsername)
	})

	t.Run("rejects empty wallet address", func(t *testing.T) {
		_, err := NewUser("trader1", "", "A1B2C3D4", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidWalletAddress)
	})

	t.Run("rejects malformed referral code", func(t *testing.T) {
		_, err := NewUser("trader1", "0xABC", "short", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidReferralCode)
	})
}

func TestUserBalance(t *testing.T) {
	tp := testClock()

	newUser := func() *User {
		user, err := NewUser("trader1", "0xABC", "A1B2C3D4", tp)
		assert.NoError(t, err)
		return user
	}

	t.Run("credit increases the balance", func(t *testing.T) {
		user := newUser()

		user.Credit(5000, tp)

		assert.Equal(t, int64(5000), user.WalletBalance())
		assert.Equal(t, "50.00", user.FormattedBalance())
	})

	t.Run("debit decreases the balance", func(t *testing.T) {
		user := newUser()
		user.Credit(5000, tp)

		err := user.Debit(2000, tp)

		assert.NoError(t, err)
		assert.Equal(t, int64(3000), user.WalletBalance())
	})

	t.Run("debit beyond the balance is rejected", func(t *testing.T) {
		user := newUser()
		user.Credit(1000, tp)

		err := user.Debit(1001, tp)

		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		assert.Equal(t, int64(1000), user.WalletBalance())
	})

	t.Run("debit of the exact balance succeeds", func(t *testing.T) {
		user := newUser()
		user.Credit(1000, tp)

		err := user.Debit(1000, tp)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), user.WalletBalance())
	})

	t.Run("can withdraw checks amount and balance", func(t *testing.T) {
		user := newUser()
		user.Credit(1000, tp)

		assert.True(t, user.CanWithdraw(1000))
		assert.True(t, user.CanWithdraw(1))
		assert.False(t, user.CanWithdraw(1001))
		assert.False(t, user.CanWithdraw(0))
		assert.False(t, user.CanWithdraw(-5))
	})

	t.Run("hydrate balance does not touch timestamps", func(t *testing.T) {
		user := newUser()
		updatedAt := user.UpdatedAt

		user.HydrateBalance(7500)

		assert.Equal(t, int64(7500), user.WalletBalance())
		assert.Equal(t, updatedAt, user.UpdatedAt)
	})
}

func TestTouchLogin(t *testing.T) {
	tp := testClock()
	user, err := NewUser("trader1", "0xABC", "A1B2C3D4", tp)
	assert.NoError(t, err)
	assert.Nil(t, user.LastLoginAt)

	user.TouchLogin(tp)

	assert.NotNil(t, user.LastLoginAt)
	assert.Equal(t, tp.now, *user.LastLoginAt)
}
