package wallet

import (
	"context"
	"strings"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// ProcessWithdrawal transitions a withdrawal transaction's status and
// records the admin's note in its metadata.
//
// The wallet balance is deliberately not re-touched: it was debited when
// the withdrawal was requested, and a failed or cancelled outcome leaves
// the debit in place. A refund is a separate, explicit operation.
func (s *Service) ProcessWithdrawal(ctx context.Context, referenceID string, status string, adminNote string) (*usecase.ProcessedWithdrawal, error) {
	newStatus, err := entity.ParseTransactionStatus(status)
	if err != nil {
		return nil, err
	}

	txn, err := s.txRepo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if txn.Type != entity.TypeWithdrawal {
		return nil, errs.ErrNotAWithdrawal
	}

	if err := txn.SetStatus(newStatus, s.timeProvider); err != nil {
		return nil, err
	}
	if strings.TrimSpace(adminNote) != "" {
		txn.AddMetadata("admin_note", adminNote)
	}

	if err := s.txRepo.Update(ctx, txn); err != nil {
		s.logger.Error("Failed to update withdrawal status", map[string]any{
			"transaction_id": referenceID,
			"status":         status,
			"error":          err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Withdrawal processed", map[string]any{
		"transaction_id": referenceID,
		"status":         status,
	})

	return &usecase.ProcessedWithdrawal{
		TransactionID: txn.ReferenceID,
		Status:        string(txn.Status),
		Metadata:      txn.Metadata,
	}, nil
}
