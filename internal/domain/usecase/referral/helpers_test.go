package referral

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	mockcore "github.com/fundedpeak/portal-api/mocks/port/core"
	mockpersistence "github.com/fundedpeak/portal-api/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

// quietLogger accepts any logging without failing expectations
func quietLogger() *mockcore.MockLogger {
	l := &mockcore.MockLogger{}
	l.On("Debug", mock.Anything, mock.Anything).Maybe()
	l.On("Info", mock.Anything, mock.Anything).Maybe()
	l.On("Warn", mock.Anything, mock.Anything).Maybe()
	l.On("Error", mock.Anything, mock.Anything).Maybe()
	return l
}

func fixedClock() *mockcore.MockTimeProvider {
	tp := &mockcore.MockTimeProvider{}
	tp.On("Now").Return(fixedTime).Maybe()
	return tp
}

// testFixture bundles the mocks behind a referral service under test
type testFixture struct {
	uow          *mockpersistence.MockUnitOfWork
	userRepo     *mockpersistence.MockUserRepository
	referralRepo *mockpersistence.MockReferralRepository
	txRepo       *mockpersistence.MockTransactionRepository
	service      *Service
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		uow:          &mockpersistence.MockUnitOfWork{},
		userRepo:     &mockpersistence.MockUserRepository{},
		referralRepo: &mockpersistence.MockReferralRepository{},
		txRepo:       &mockpersistence.MockTransactionRepository{},
	}
	f.service = NewService(
		f.uow,
		f.userRepo,
		f.referralRepo,
		f.txRepo,
		fixedClock(),
		quietLogger(),
		DefaultConfig(),
	)
	return f
}

// makeUser builds a persisted-looking user entity for mock returns
func makeUser(t *testing.T, id uint64, username, code string, balanceCents int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser(username, "0x"+username, code, fixedClock())
	assert.NoError(t, err)
	user.ID = id
	user.HydrateBalance(balanceCents)
	return user
}

// makeReferral builds a persisted-looking pending referral for mock returns
func makeReferral(t *testing.T, id, referrerID, referredUserID uint64, code string) *entity.Referral {
	t.Helper()

	referral, err := entity.NewReferral(referrerID, referredUserID, code, fixedClock())
	assert.NoError(t, err)
	referral.ID = id
	return referral
}
