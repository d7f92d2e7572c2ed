package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	port "github.com/fundedpeak/portal-api/internal/domain/port/persistence"
)

// MockReferralRepository is a testify mock for the ReferralRepository port
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, referral *entity.Referral) error {
	args := m.Called(ctx, referral)
	return args.Error(0)
}

func (m *MockReferralRepository) GetByReferredID(ctx context.Context, referredUserID uint64) (*entity.Referral, error) {
	args := m.Called(ctx, referredUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Referral), args.Error(1)
}

func (m *MockReferralRepository) ClaimPending(ctx context.Context, referredUserID uint64, priceCents, rewardCents int64) (*entity.Referral, error) {
	args := m.Called(ctx, referredUserID, priceCents, rewardCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Referral), args.Error(1)
}

func (m *MockReferralRepository) CountByStatus(ctx context.Context, referrerID uint64) (map[entity.ReferralStatus]int64, error) {
	args := m.Called(ctx, referrerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entity.ReferralStatus]int64), args.Error(1)
}

func (m *MockReferralRepository) ListByReferrer(ctx context.Context, referrerID uint64, page, limit int) ([]port.ReferralWithUser, int64, error) {
	args := m.Called(ctx, referrerID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]port.ReferralWithUser), args.Get(1).(int64), args.Error(2)
}

func (m *MockReferralRepository) Leaderboard(ctx context.Context, limit int) ([]port.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.LeaderboardEntry), args.Error(1)
}
