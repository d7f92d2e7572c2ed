package wallet

import (
	"context"
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/domain/port/usecase"
)

// ListTransactions returns a page of the user's ledger history, newest
// first, optionally filtered by type
func (s *Service) ListTransactions(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]usecase.TransactionItem, *usecase.Page, error) {
	if userID == 0 {
		return nil, nil, errs.ErrInvalidUserID
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	records, total, err := s.txRepo.ListByUser(ctx, userID, types, page, limit)
	if err != nil {
		return nil, nil, err
	}

	items := make([]usecase.TransactionItem, 0, len(records))
	for _, txn := range records {
		items = append(items, usecase.TransactionItem{
			TransactionID: txn.ReferenceID,
			Amount:        txn.FormattedAmount(),
			Type:          string(txn.Type),
			Status:        string(txn.Status),
			Description:   txn.Description,
			Metadata:      txn.Metadata,
			CreatedAt:     txn.CreatedAt.Format(time.RFC3339),
		})
	}

	pages := 0
	if total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	return items, &usecase.Page{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}, nil
}
