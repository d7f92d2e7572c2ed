package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
	errs "github.com/fundedpeak/portal-api/internal/domain/error"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository on
// postgres via gorm
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	row := model.TransactionFromEntity(transaction)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return mapDatabaseError(err)
	}
	transaction.ID = row.ID
	return nil
}

// Update persists status and metadata changes. Amount, type and owner are
// immutable after creation.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("reference_id = ?", transaction.ReferenceID).
		Updates(map[string]any{
			"status":       string(transaction.Status),
			"metadata":     model.JSONMap(transaction.Metadata),
			"processed_at": transaction.ProcessedAt,
		})
	if result.Error != nil {
		return mapDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByReferenceID retrieves a transaction by its external reference id
func (r *TransactionRepository) GetByReferenceID(ctx context.Context, referenceID string) (*entity.Transaction, error) {
	var row model.Transaction
	err := r.db.WithContext(ctx).First(&row, "reference_id = ?", referenceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, mapDatabaseError(err)
	}
	return row.ToEntity(), nil
}

// ListByUser returns a page of a user's transactions, newest first,
// optionally filtered by type
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, types []entity.TransactionType, page, limit int) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("user_id = ?", userID)
	if len(types) > 0 {
		typeStrings := make([]string, 0, len(types))
		for _, t := range types {
			typeStrings = append(typeStrings, string(t))
		}
		query = query.Where("type IN ?", typeStrings)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, mapDatabaseError(err)
	}

	var rows []model.Transaction
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, mapDatabaseError(err)
	}

	transactions := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, rows[i].ToEntity())
	}
	return transactions, total, nil
}

// SumCompletedByType sums the amounts of a user's completed transactions
// of the given type
func (r *TransactionRepository) SumCompletedByType(ctx context.Context, userID uint64, txType entity.TransactionType) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND status = ?", userID, string(txType), string(entity.StatusCompleted)).
		Scan(&sum).Error
	if err != nil {
		return 0, mapDatabaseError(err)
	}
	return sum, nil
}
