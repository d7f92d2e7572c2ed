package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	port "github.com/fundedpeak/portal-api/internal/domain/port/persistence"
)

// MockUnitOfWork is a testify mock for the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) port.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(port.UserRepository)
}

func (m *MockUnitOfWork) GetReferralRepository(ctx context.Context) port.ReferralRepository {
	args := m.Called(ctx)
	return args.Get(0).(port.ReferralRepository)
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) port.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(port.TransactionRepository)
}
