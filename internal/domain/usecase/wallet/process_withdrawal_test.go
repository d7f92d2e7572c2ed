package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
)

func TestProcessWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("completes a pending withdrawal", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		txn := makeWithdrawal(t, 1, 2500)

		f.txRepo.On("GetByReferenceID", mock.Anything, txn.ReferenceID).Return(txn, nil)
		f.txRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*entity.Transaction)
				assert.Equal(t, entity.StatusCompleted, updated.Status)
				assert.NotNil(t, updated.ProcessedAt)
				assert.Equal(t, fixedTime, *updated.ProcessedAt)
				assert.Equal(t, "paid out", updated.Metadata["admin_note"])
			}).
			Return(nil)

		// Act
		result, err := f.service.ProcessWithdrawal(ctx, txn.ReferenceID, "completed", "paid out")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, txn.ReferenceID, result.TransactionID)
		assert.Equal(t, "completed", result.Status)
		f.txRepo.AssertExpectations(t)
	})

	t.Run("failed withdrawal keeps the debit in place", func(t *testing.T) {
		// Arrange: no balance adjustment happens on the failure path
		f := newFixture(t)
		txn := makeWithdrawal(t, 1, 2500)

		f.txRepo.On("GetByReferenceID", mock.Anything, txn.ReferenceID).Return(txn, nil)
		f.txRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		// Act
		result, err := f.service.ProcessWithdrawal(ctx, txn.ReferenceID, "failed", "")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "failed", result.Status)
		f.userRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty admin note adds no metadata", func(t *testing.T) {
		f := newFixture(t)
		txn := makeWithdrawal(t, 1, 2500)

		f.txRepo.On("GetByReferenceID", mock.Anything, txn.ReferenceID).Return(txn, nil)
		f.txRepo.On("Update", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*entity.Transaction)
				_, present := updated.Metadata["admin_note"]
				assert.False(t, present)
			}).
			Return(nil)

		_, err := f.service.ProcessWithdrawal(ctx, txn.ReferenceID, "cancelled", "  ")

		assert.NoError(t, err)
	})

	t.Run("rejects a transaction that is not a withdrawal", func(t *testing.T) {
		f := newFixture(t)
		reward, err := entity.NewTransaction(1, entity.TypeReferralReward, 5000, "Referral reward", fixedClock())
		assert.NoError(t, err)

		f.txRepo.On("GetByReferenceID", mock.Anything, reward.ReferenceID).Return(reward, nil)

		_, err = f.service.ProcessWithdrawal(ctx, reward.ReferenceID, "completed", "")

		assert.ErrorIs(t, err, errs.ErrNotAWithdrawal)
		f.txRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown status before loading anything", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.ProcessWithdrawal(ctx, "ref-1", "done", "")

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionStatus)
		f.txRepo.AssertNotCalled(t, "GetByReferenceID", mock.Anything, mock.Anything)
	})

	t.Run("unknown reference id passes through", func(t *testing.T) {
		f := newFixture(t)

		f.txRepo.On("GetByReferenceID", mock.Anything, "missing").
			Return(nil, errs.ErrTransactionNotFound)

		_, err := f.service.ProcessWithdrawal(ctx, "missing", "completed", "")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("maps records and paginates", func(t *testing.T) {
		f := newFixture(t)
		txn := makeWithdrawal(t, 1, 2500)

		f.txRepo.On("ListByUser", mock.Anything, uint64(1), []entity.TransactionType(nil), 1, 10).
			Return([]*entity.Transaction{txn}, int64(25), nil)

		items, page, err := f.service.ListTransactions(ctx, 1, nil, 0, 0)

		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "-25.00", items[0].Amount)
		assert.Equal(t, "withdrawal", items[0].Type)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.Limit)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 3, page.Pages)
	})

	t.Run("limit is capped at 100", func(t *testing.T) {
		f := newFixture(t)

		f.txRepo.On("ListByUser", mock.Anything, uint64(1), []entity.TransactionType(nil), 1, 100).
			Return([]*entity.Transaction{}, int64(0), nil)

		items, page, err := f.service.ListTransactions(ctx, 1, nil, 1, 500)

		assert.NoError(t, err)
		assert.Empty(t, items)
		assert.Equal(t, 100, page.Limit)
		assert.Equal(t, 0, page.Pages)
	})
}
