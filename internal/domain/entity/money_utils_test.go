package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("whole number", func(t *testing.T) {
		cents, err := ParseAmount("10")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), cents)
	})

	t.Run("one decimal place", func(t *testing.T) {
		cents, err := ParseAmount("10.5")
		assert.NoError(t, err)
		assert.Equal(t, int64(1050), cents)
	})

	t.Run("two decimal places", func(t *testing.T) {
		cents, err := ParseAmount("10.57")
		assert.NoError(t, err)
		assert.Equal(t, int64(1057), cents)
	})

	t.Run("trailing decimal point", func(t *testing.T) {
		cents, err := ParseAmount("10.")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), cents)
	})

	t.Run("zero is allowed", func(t *testing.T) {
		cents, err := ParseAmount("0")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), cents)
	})

	t.Run("negative is rejected", func(t *testing.T) {
		_, err := ParseAmount("-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("three decimal places are rejected", func(t *testing.T) {
		_, err := ParseAmount("10.575")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseAmount("abc")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseAmount("")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("multiple decimal points", func(t *testing.T) {
		_, err := ParseAmount("10.5.7")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestParsePositiveAmount(t *testing.T) {
	t.Run("positive value", func(t *testing.T) {
		cents, err := ParsePositiveAmount("49.99")
		assert.NoError(t, err)
		assert.Equal(t, int64(4999), cents)
	})

	t.Run("zero is rejected", func(t *testing.T) {
		_, err := ParsePositiveAmount("0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "10.15", FormatCents(1015))
	assert.Equal(t, "0.50", FormatCents(50))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "-0.50", FormatCents(-50))
	assert.Equal(t, "-123.45", FormatCents(-12345))
	assert.Equal(t, "100.00", FormatCents(10000))
}

func TestRewardCents(t *testing.T) {
	t.Run("half of an even price", func(t *testing.T) {
		assert.Equal(t, int64(5000), RewardCents(10000, 50))
	})

	t.Run("odd cent truncates down", func(t *testing.T) {
		// 99.99 at 50% is 49.995, paid as 49.99
		assert.Equal(t, int64(4999), RewardCents(9999, 50))
	})

	t.Run("round trip through parse and format", func(t *testing.T) {
		priceCents, err := ParsePositiveAmount("149.99")
		assert.NoError(t, err)
		assert.Equal(t, "74.99", FormatCents(RewardCents(priceCents, 50)))
	})
}
