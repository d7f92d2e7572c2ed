package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

func TestNewReferral(t *testing.T) {
	tp := testClock()

	t.Run("creates a pending referral", func(t *testing.T) {
		referral, err := NewReferral(1, 2, "A1B2C3D4", tp)

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), referral.ReferrerID)
		assert.Equal(t, uint64(2), referral.ReferredUserID)
		assert.Equal(t, ReferralStatusPending, referral.Status)
		assert.Equal(t, "A1B2C3D4", referral.CodeUsed)
		assert.False(t, referral.ChallengePurchased)
		assert.Equal(t, int64(0), referral.RewardCents)
		assert.True(t, referral.IsPending())
	})

	t.Run("rejects zero referrer id", func(t *testing.T) {
		_, err := NewReferral(0, 2, "A1B2C3D4", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("rejects zero referred user id", func(t *testing.T) {
		_, err := NewReferral(1, 0, "A1B2C3D4", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("rejects self referral", func(t *testing.T) {
		_, err := NewReferral(7, 7, "A1B2C3D4", tp)
		assert.ErrorIs(t, err, errs.ErrSelfReferral)
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, err := NewReferral(1, 2, "nope", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidReferralCode)
	})
}

func TestReferralActivate(t *testing.T) {
	tp := testClock()

	t.Run("pending referral activates with price and reward", func(t *testing.T) {
		referral, err := NewReferral(1, 2, "A1B2C3D4", tp)
		assert.NoError(t, err)

		err = referral.Activate(10000, 5000, tp)

		assert.NoError(t, err)
		assert.Equal(t, ReferralStatusActive, referral.Status)
		assert.True(t, referral.ChallengePurchased)
		assert.Equal(t, int64(10000), referral.ChallengePriceCents)
		assert.Equal(t, int64(5000), referral.RewardCents)
		assert.False(t, referral.IsPending())
	})

	t.Run("second activation is rejected", func(t *testing.T) {
		referral, err := NewReferral(1, 2, "A1B2C3D4", tp)
		assert.NoError(t, err)
		assert.NoError(t, referral.Activate(10000, 5000, tp))

		err = referral.Activate(20000, 10000, tp)

		assert.ErrorIs(t, err, errs.ErrReferralAlreadyProcessed)
		// The first activation's values survive
		assert.Equal(t, int64(10000), referral.ChallengePriceCents)
		assert.Equal(t, int64(5000), referral.RewardCents)
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		referral, err := NewReferral(1, 2, "A1B2C3D4", tp)
		assert.NoError(t, err)

		err = referral.Activate(0, 0, tp)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.True(t, referral.IsPending())
	})
}

func TestIsValidReferralStatus(t *testing.T) {
	assert.True(t, IsValidReferralStatus("pending"))
	assert.True(t, IsValidReferralStatus("active"))
	assert.True(t, IsValidReferralStatus("rewarded"))
	assert.False(t, IsValidReferralStatus("expired"))
	assert.False(t, IsValidReferralStatus(""))
}
