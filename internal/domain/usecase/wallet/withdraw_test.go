package wallet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	request := usecase.WithdrawalRequest{
		Amount:         "25.00",
		Method:         "usdc",
		AccountDetails: "0xabc123",
	}

	t.Run("debits the balance and records a pending transaction", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		before := makeUser(t, 1, "alice", 10000)
		after := makeUser(t, 1, "alice", 7500)

		f.uow.On("Begin", mock.Anything).Return(ctx, nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.userRepo)
		f.uow.On("GetTransactionRepository", mock.Anything).Return(f.txRepo)
		f.uow.On("Commit", mock.Anything).Return(nil)

		f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(before, nil)
		f.userRepo.On("AdjustBalance", mock.Anything, uint64(1), int64(-2500)).Return(after, nil)
		f.txRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				txn := args.Get(1).(*entity.Transaction)
				assert.Equal(t, entity.TypeWithdrawal, txn.Type)
				assert.Equal(t, int64(-2500), txn.AmountCents)
				assert.Equal(t, entity.StatusPending, txn.Status)
				assert.Equal(t, "usdc", txn.Metadata["method"])
				assert.Equal(t, "0xabc123", txn.Metadata["account_details"])
				assert.Equal(t, "100.00", txn.Metadata["balance_before"])
				assert.Equal(t, "75.00", txn.Metadata["balance_after"])
			}).
			Return(nil)

		// Act
		result, err := f.service.RequestWithdrawal(ctx, 1, request)

		// Assert
		assert.NoError(t, err)
		assert.NotEmpty(t, result.TransactionID)
		assert.Equal(t, "25.00", result.WithdrawalAmount)
		assert.Equal(t, "75.00", result.NewBalance)
		f.uow.AssertExpectations(t)
		f.txRepo.AssertExpectations(t)
	})

	t.Run("insufficient balance is rejected with details", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		user := makeUser(t, 1, "alice", 1000)

		f.uow.On("Begin", mock.Anything).Return(ctx, nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.userRepo)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(user, nil)

		// Act
		_, err := f.service.RequestWithdrawal(ctx, 1, request)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		var balErr *errs.InsufficientBalanceError
		assert.ErrorAs(t, err, &balErr)
		assert.Equal(t, int64(2500), balErr.RequestedCents)
		assert.Equal(t, int64(1000), balErr.BalanceCents)
		f.userRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertCalled(t, "Rollback", mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("a concurrent debit losing the race still fails cleanly", func(t *testing.T) {
		// Arrange: the snapshot says the money is there, but the conditional
		// decrement finds it gone
		f := newFixture(t)
		user := makeUser(t, 1, "alice", 10000)

		f.uow.On("Begin", mock.Anything).Return(ctx, nil)
		f.uow.On("GetUserRepository", mock.Anything).Return(f.userRepo)
		f.uow.On("Rollback", mock.Anything).Return(nil)

		f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(user, nil)
		f.userRepo.On("AdjustBalance", mock.Anything, uint64(1), int64(-2500)).
			Return(nil, errs.ErrInsufficientBalance)

		// Act
		_, err := f.service.RequestWithdrawal(ctx, 1, request)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
		f.txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing method fails before any transaction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "25.00"})

		assert.ErrorIs(t, err, errs.ErrWithdrawalMethodRequired)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("non-positive and malformed amounts are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, errZero := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "0", Method: "usdc"})
		_, errNegative := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "-5.00", Method: "usdc"})
		_, errText := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "lots", Method: "usdc"})

		assert.ErrorIs(t, errZero, errs.ErrInvalidAmount)
		assert.ErrorIs(t, errNegative, errs.ErrNegativeAmount)
		assert.ErrorIs(t, errText, errs.ErrInvalidAmount)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("formats the balance with currency", func(t *testing.T) {
		f := newFixture(t)
		user := makeUser(t, 1, "alice", 12345)

		f.userRepo.On("GetByID", mock.Anything, uint64(1)).Return(user, nil)

		balance, err := f.service.GetBalance(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "123.45", balance.WalletBalance)
		assert.Equal(t, "USD", balance.Currency)
	})

	t.Run("unknown user passes through", func(t *testing.T) {
		f := newFixture(t)

		f.userRepo.On("GetByID", mock.Anything, uint64(9)).Return(nil, errs.ErrUserNotFound)

		_, err := f.service.GetBalance(ctx, 9)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
