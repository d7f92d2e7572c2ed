package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

func TestNewTransaction(t *testing.T) {
	tp := testClock()

	t.Run("creates a completed credit", func(t *testing.T) {
		txn, err := NewTransaction(1, TypeReferralReward, 5000, "Referral reward", tp)

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), txn.UserID)
		assert.NotEmpty(t, txn.ReferenceID)
		assert.Equal(t, int64(5000), txn.AmountCents)
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.True(t, txn.IsCredit())
		assert.False(t, txn.IsDebit())
		assert.NotNil(t, txn.ProcessedAt)
	})

	t.Run("reference ids are unique", func(t *testing.T) {
		first, err := NewTransaction(1, TypeReferralReward, 5000, "", tp)
		assert.NoError(t, err)
		second, err := NewTransaction(1, TypeReferralReward, 5000, "", tp)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ReferenceID, second.ReferenceID)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := NewTransaction(1, TypeReferralReward, 0, "", tp)
		assert.ErrorIs(t, err, errs.ErrZeroAmount)
	})

	t.Run("rejects zero user id", func(t *testing.T) {
		_, err := NewTransaction(0, TypeReferralReward, 5000, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewTransaction(1, TransactionType("bonus"), 5000, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}

func TestNewWithdrawalTransaction(t *testing.T) {
	tp := testClock()

	t.Run("records a pending negative amount", func(t *testing.T) {
		txn, err := NewWithdrawalTransaction(1, 2500, "Withdrawal via usdc", tp)

		assert.NoError(t, err)
		assert.Equal(t, int64(-2500), txn.AmountCents)
		assert.Equal(t, TypeWithdrawal, txn.Type)
		assert.Equal(t, StatusPending, txn.Status)
		assert.True(t, txn.IsDebit())
		assert.Nil(t, txn.ProcessedAt)
		assert.Equal(t, "-25.00", txn.FormattedAmount())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := NewWithdrawalTransaction(1, 0, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewWithdrawalTransaction(1, -100, "", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionSetStatus(t *testing.T) {
	tp := testClock()

	t.Run("valid transition stamps processing time", func(t *testing.T) {
		txn, err := NewWithdrawalTransaction(1, 2500, "", tp)
		assert.NoError(t, err)

		err = txn.SetStatus(StatusCompleted, tp)

		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, txn.Status)
		assert.NotNil(t, txn.ProcessedAt)
		assert.Equal(t, tp.now, *txn.ProcessedAt)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		txn, err := NewWithdrawalTransaction(1, 2500, "", tp)
		assert.NoError(t, err)

		err = txn.SetStatus(TransactionStatus("done"), tp)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionStatus)
		assert.Equal(t, StatusPending, txn.Status)
	})
}

func TestTransactionMetadata(t *testing.T) {
	tp := testClock()
	txn, err := NewWithdrawalTransaction(1, 2500, "", tp)
	assert.NoError(t, err)

	txn.WithRelated(42).
		AddMetadata("method", "usdc").
		AddMetadata("balance_before", "100.00")

	assert.NotNil(t, txn.RelatedID)
	assert.Equal(t, uint64(42), *txn.RelatedID)
	assert.Equal(t, "usdc", txn.Metadata["method"])
	assert.Equal(t, "100.00", txn.Metadata["balance_before"])
}

func TestParseTransactionStatus(t *testing.T) {
	status, err := ParseTransactionStatus("completed")
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, status)

	_, err = ParseTransactionStatus("settled")
	assert.ErrorIs(t, err, errs.ErrInvalidTransactionStatus)
}
