package wallet

import (
	"context"

	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/domain/port/persistence"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// Currency is the single settlement currency of the portal wallet
const Currency = "USD"

// Service implements the wallet use case: balance reads, withdrawal
// requests, admin withdrawal processing, and transaction history
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	txRepo       persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a wallet service
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	txRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		txRepo:       txRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBalance returns the user's current wallet balance
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*usecase.BalanceInfo, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.BalanceInfo{
		WalletBalance: user.FormattedBalance(),
		Currency:      Currency,
	}, nil
}
