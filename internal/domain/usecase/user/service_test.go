package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
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

func newTestService(t *testing.T) (*Service, *mockpersistence.MockUserRepository) {
	t.Helper()

	userRepo := &mockpersistence.MockUserRepository{}
	return NewService(userRepo, fixedClock(), quietLogger()), userRepo
}

func registeredAlice(t *testing.T) *entity.User {
	t.Helper()

	user, err := entity.NewUser("alice", "0xalice", "A1B2C3D4", fixedClock())
	assert.NoError(t, err)
	user.ID = 1
	return user
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	request := usecase.RegisterRequest{
		Username:      "alice",
		WalletAddress: "0xalice",
		Password:      "hunter22",
	}

	t.Run("creates a user with a generated code and hashed password", func(t *testing.T) {
		// Arrange
		service, userRepo := newTestService(t)

		userRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				created := args.Get(1).(*entity.User)
				created.ID = 1
			}).
			Return(nil).Once()

		// Act
		user, err := service.Register(ctx, request)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, entity.IsValidReferralCode(user.ReferralCode))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
		assert.Zero(t, user.WalletBalance())
	})

	t.Run("password is optional for wallet-only accounts", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.On("GetByUsername", mock.Anything, "bob").
			Return(nil, errs.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		user, err := service.Register(ctx, usecase.RegisterRequest{
			Username:      "bob",
			WalletAddress: "0xbob",
		})

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("code collision retries with a fresh code", func(t *testing.T) {
		// Arrange
		service, userRepo := newTestService(t)
		var codes []string

		userRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound)

		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				codes = append(codes, args.Get(1).(*entity.User).ReferralCode)
			}).
			Return(errs.ErrDuplicateReferralCode).Once()
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				codes = append(codes, args.Get(1).(*entity.User).ReferralCode)
			}).
			Return(nil).Once()

		// Act
		user, err := service.Register(ctx, request)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, codes, 2)
		assert.NotEqual(t, codes[0], codes[1])
		assert.Equal(t, codes[1], user.ReferralCode)
		userRepo.AssertExpectations(t)
	})

	t.Run("persistent collisions give up after bounded attempts", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateReferralCode).Times(maxCodeAttempts)

		_, err := service.Register(ctx, request)

		assert.ErrorIs(t, err, errs.ErrReferralCodeExhausted)
		userRepo.AssertExpectations(t)
	})

	t.Run("taken username is rejected before any write", func(t *testing.T) {
		service, userRepo := newTestService(t)
		existing := registeredAlice(t)

		userRepo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil)

		_, err := service.Register(ctx, request)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate wallet address from the index fails without retrying", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errs.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateUser).Once()

		_, err := service.Register(ctx, request)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		userRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("blank identity fields are rejected", func(t *testing.T) {
		service, userRepo := newTestService(t)

		_, errName := service.Register(ctx, usecase.RegisterRequest{WalletAddress: "0xbob"})
		_, errWallet := service.Register(ctx, usecase.RegisterRequest{Username: "bob", WalletAddress: "   "})

		assert.ErrorIs(t, errName, errs.ErrInvalidUsername)
		assert.ErrorIs(t, errWallet, errs.ErrInvalidWalletAddress)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	registeredUser := func(t *testing.T, password string) *entity.User {
		t.Helper()
		user, err := entity.NewUser("alice", "0xalice", "A1B2C3D4", fixedClock())
		assert.NoError(t, err)
		user.ID = 1
		if password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
			assert.NoError(t, err)
			user.PasswordHash = string(hash)
		}
		return user
	}

	t.Run("valid credentials record the login time", func(t *testing.T) {
		// Arrange
		service, userRepo := newTestService(t)
		user := registeredUser(t, "hunter22")

		userRepo.On("GetByWalletAddress", mock.Anything, "0xalice").Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*entity.User)
				assert.NotNil(t, updated.LastLoginAt)
				assert.Equal(t, fixedTime, *updated.LastLoginAt)
			}).
			Return(nil)

		// Act
		got, err := service.Login(ctx, "0xalice", "hunter22")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), got.ID)
		userRepo.AssertExpectations(t)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := registeredUser(t, "hunter22")

		userRepo.On("GetByWalletAddress", mock.Anything, "0xalice").Return(user, nil)

		_, err := service.Login(ctx, "0xalice", "letmein")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown wallet looks identical to a wrong password", func(t *testing.T) {
		service, userRepo := newTestService(t)

		userRepo.On("GetByWalletAddress", mock.Anything, "0xnobody").
			Return(nil, errs.ErrUserNotFound)

		_, err := service.Login(ctx, "0xnobody", "hunter22")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("wallet-only accounts cannot password login", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := registeredUser(t, "")

		userRepo.On("GetByWalletAddress", mock.Anything, "0xalice").Return(user, nil)

		_, err := service.Login(ctx, "0xalice", "anything")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("login survives a failed timestamp write", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user := registeredUser(t, "hunter22")

		userRepo.On("GetByWalletAddress", mock.Anything, "0xalice").Return(user, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)

		got, err := service.Login(ctx, "0xalice", "hunter22")

		assert.NoError(t, err)
		assert.NotNil(t, got)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("zero id is rejected", func(t *testing.T) {
		service, userRepo := newTestService(t)

		_, err := service.GetByID(ctx, 0)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		service, userRepo := newTestService(t)
		user, err := entity.NewUser("alice", "0xalice", "A1B2C3D4", fixedClock())
		assert.NoError(t, err)
		user.ID = 1

		userRepo.On("GetByID", mock.Anything, uint64(1)).Return(user, nil)

		got, err := service.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})
}
