package wallet

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

// testFixture bundles the mocks behind a wallet service under test
type testFixture struct {
	uow      *mockpersistence.MockUnitOfWork
	userRepo *mockpersistence.MockUserRepository
	txRepo   *mockpersistence.MockTransactionRepository
	service  *Service
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		uow:      &mockpersistence.MockUnitOfWork{},
		userRepo: &mockpersistence.MockUserRepository{},
		txRepo:   &mockpersistence.MockTransactionRepository{},
	}
	f.service = NewService(f.uow, f.userRepo, f.txRepo, fixedClock(), quietLogger())
	return f
}

func makeUser(t *testing.T, id uint64, username string, balanceCents int64) *entity.User {
	t.Helper()

	user, err := entity.NewUser(username, "0x"+username, "A1B2C3D4", fixedClock())
	assert.NoError(t, err)
	user.ID = id
	user.HydrateBalance(balanceCents)
	return user
}

func makeWithdrawal(t *testing.T, userID uint64, amountCents int64) *entity.Transaction {
	t.Helper()

	txn, err := entity.NewWithdrawalTransaction(userID, amountCents, "Withdrawal via usdc", fixedClock())
	assert.NoError(t, err)
	return txn
}
