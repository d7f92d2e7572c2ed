package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// MockTransactionRepository is a testify mock for the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetByReferenceID(ctx context.Context, referenceID string) (*entity.Transaction, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]*entity.Transaction, int64, error) {
	args := m.Called(ctx, userID, types, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) SumCompletedByType(ctx context.Context, userID uint64, txType entity.TransactionType) (int64, error) {
	args := m.Called(ctx, userID, txType)
	return args.Get(0).(int64), args.Error(1)
}
