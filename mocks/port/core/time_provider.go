package core

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
)

// MockTimeProvider is a testify mock for the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

func (m *MockTimeProvider) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	args := m.Called(t)
	return args.Get(0).(coreport.Duration)
}

func (m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	args := m.Called(ctx, timeout)
	return args.Get(0).(context.Context), args.Get(1).(context.CancelFunc)
}
