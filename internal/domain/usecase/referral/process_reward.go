package referral

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// noPendingReferralMessage is the observable result of a purchase with no
// referral attached; callers treat it as a normal outcome
const noPendingReferralMessage = "no pending referral found"

// ProcessReferralReward handles a referred user's first challenge purchase:
// it claims the pending referral, credits the referrer with the configured
// percentage of the price, and appends the audit transaction. All writes
// happen in one database transaction.
//
// Idempotence is status-guarded: the claim only matches a pending
// referral, so a second invocation for the same user finds nothing and
// returns the no-op result.
func (s *Service) ProcessReferralReward(ctx context.Context, referredUserID uint64, challengePrice string) (*usecase.RewardResult, error) {
	if referredUserID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	priceCents, err := entity.ParsePositiveAmount(challengePrice)
	if err != nil {
		return nil, err
	}
	rewardCents := entity.RewardCents(priceCents, s.cfg.RewardPercent)

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.processRewardTx(txCtx, referredUserID, priceCents, rewardCents)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Rollback failed after reward error", map[string]any{
				"referred_user_id": referredUserID,
				"error":            rbErr.Error(),
			})
		}
		return nil, err
	}

	if !result.Rewarded {
		// Nothing was written; release the transaction
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Rollback failed on no-op reward", map[string]any{
				"referred_user_id": referredUserID,
				"error":            rbErr.Error(),
			})
		}
		return result, nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit reward transaction", map[string]any{
			"referred_user_id": referredUserID,
			"error":            err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Referral reward processed", map[string]any{
		"referred_user_id": referredUserID,
		"referrer_id":      result.ReferrerID,
		"reward":           result.RewardAmount,
		"new_balance":      result.NewBalance,
	})

	return result, nil
}

// processRewardTx runs the reward writes inside the transactional context
func (s *Service) processRewardTx(txCtx context.Context, referredUserID uint64, priceCents, rewardCents int64) (*usecase.RewardResult, error) {
	referralRepo := s.uow.GetReferralRepository(txCtx)

	referral, err := referralRepo.ClaimPending(txCtx, referredUserID, priceCents, rewardCents)
	if err != nil {
		if errors.Is(err, errs.ErrNoPendingReferral) {
			return &usecase.RewardResult{Rewarded: false, Message: noPendingReferralMessage}, nil
		}
		return nil, err
	}

	userRepo := s.uow.GetUserRepository(txCtx)
	referrer, err := userRepo.AdjustBalance(txCtx, referral.ReferrerID, rewardCents)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			// Dangling referrer reference; should be unreachable but must
			// abort the claim rather than pay nobody
			return nil, errs.NewRewardError(referredUserID, referral.ReferrerID, "referrer not found", err)
		}
		return nil, errs.NewRewardError(referredUserID, referral.ReferrerID, "balance credit failed", err)
	}

	txn, err := entity.NewTransaction(
		referrer.ID,
		entity.TypeReferralReward,
		rewardCents,
		fmt.Sprintf("Referral reward for user %d's challenge purchase", referredUserID),
		s.timeProvider,
	)
	if err != nil {
		return nil, errs.NewRewardError(referredUserID, referral.ReferrerID, "audit transaction invalid", err)
	}
	txn.WithRelated(referral.ID).
		AddMetadata("referred_user_id", referredUserID).
		AddMetadata("challenge_price", entity.FormatCents(priceCents)).
		AddMetadata("reward_percent", s.cfg.RewardPercent).
		AddMetadata("referral_code", referral.CodeUsed)

	txRepo := s.uow.GetTransactionRepository(txCtx)
	if err := txRepo.Create(txCtx, txn); err != nil {
		return nil, errs.NewRewardError(referredUserID, referral.ReferrerID, "audit transaction write failed", err)
	}

	return &usecase.RewardResult{
		Rewarded:         true,
		ReferrerID:       referrer.ID,
		ReferrerUsername: referrer.Username,
		RewardAmount:     entity.FormatCents(rewardCents),
		NewBalance:       referrer.FormattedBalance(),
	}, nil
}
