package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// RequestWithdrawal records a pending withdrawal and debits the wallet
// balance. Both writes happen in one database transaction; the debit is a
// conditional atomic decrement, so a concurrent credit or second
// withdrawal cannot lose an update or push the balance negative.
func (s *Service) RequestWithdrawal(ctx context.Context, userID uint64, req usecase.WithdrawalRequest) (*usecase.WithdrawalResult, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(req.Method) == "" {
		return nil, errs.ErrWithdrawalMethodRequired
	}

	amountCents, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.withdrawTx(txCtx, userID, amountCents, req)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after withdrawal error", map[string]any{
				"user_id": userID,
				"error":   rbErr.Error(),
			})
		}
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit withdrawal", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Withdrawal requested", map[string]any{
		"user_id":        userID,
		"amount":         result.WithdrawalAmount,
		"method":         req.Method,
		"transaction_id": result.TransactionID,
		"new_balance":    result.NewBalance,
	})

	return result, nil
}

// withdrawTx runs the withdrawal writes inside the transactional context
func (s *Service) withdrawTx(txCtx context.Context, userID uint64, amountCents int64, req usecase.WithdrawalRequest) (*usecase.WithdrawalResult, error) {
	userRepo := s.uow.GetUserRepository(txCtx)

	// Load first for the pre-debit snapshot and a precise error message;
	// the conditional decrement below still guards against races
	user, err := userRepo.GetByID(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanWithdraw(amountCents) {
		return nil, errs.NewInsufficientBalanceError(userID, amountCents, user.WalletBalance())
	}
	balanceBefore := user.WalletBalance()

	user, err = userRepo.AdjustBalance(txCtx, userID, -amountCents)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, errs.NewInsufficientBalanceError(userID, amountCents, balanceBefore)
		}
		return nil, err
	}

	txn, err := entity.NewWithdrawalTransaction(
		userID,
		amountCents,
		fmt.Sprintf("Withdrawal via %s", req.Method),
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}
	txn.AddMetadata("method", req.Method).
		AddMetadata("account_details", req.AccountDetails).
		AddMetadata("balance_before", entity.FormatCents(balanceBefore)).
		AddMetadata("balance_after", user.FormattedBalance())

	txRepo := s.uow.GetTransactionRepository(txCtx)
	if err := txRepo.Create(txCtx, txn); err != nil {
		return nil, err
	}

	return &usecase.WithdrawalResult{
		TransactionID:    txn.ReferenceID,
		WithdrawalAmount: entity.FormatCents(amountCents),
		NewBalance:       user.FormattedBalance(),
	}, nil
}
