package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	port "github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// MockWalletUseCase is a testify mock for the WalletUseCase port
type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) GetBalance(ctx context.Context, userID uint64) (*port.BalanceInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.BalanceInfo), args.Error(1)
}

func (m *MockWalletUseCase) RequestWithdrawal(ctx context.Context, userID uint64, req port.WithdrawalRequest) (*port.WithdrawalResult, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.WithdrawalResult), args.Error(1)
}

func (m *MockWalletUseCase) ProcessWithdrawal(ctx context.Context, referenceID string, status string, adminNote string) (*port.ProcessedWithdrawal, error) {
	args := m.Called(ctx, referenceID, status, adminNote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ProcessedWithdrawal), args.Error(1)
}

func (m *MockWalletUseCase) ListTransactions(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]port.TransactionItem, *port.Page, error) {
	args := m.Called(ctx, userID, types, page, limit)
	if args.Get(0) == nil {
		if args.Get(1) == nil {
			return nil, nil, args.Error(2)
		}
		return nil, args.Get(1).(*port.Page), args.Error(2)
	}
	return args.Get(0).([]port.TransactionItem), args.Get(1).(*port.Page), args.Error(2)
}
