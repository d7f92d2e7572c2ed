package model

import (
	"time"

	"github.com/fundedpeak/portal-api/internal/domain/entity"
)

// Transaction is the gorm model for the append-only transactions table
type Transaction struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	UserID      uint64     `gorm:"not null;index:idx_transactions_user_id"`
	ReferenceID string     `gorm:"size:36;not null;uniqueIndex:idx_transactions_reference_id"`
	Amount      int64      `gorm:"not null"`
	Type        string     `gorm:"size:32;not null;index:idx_transactions_type"`
	Status      string     `gorm:"size:16;not null;default:'pending'"`
	Description string     `gorm:"size:255"`
	RelatedID   *uint64    `gorm:""`
	Metadata    JSONMap    `gorm:"type:jsonb"`
	CreatedAt   time.Time  `gorm:"not null"`
	ProcessedAt *time.Time `gorm:""`
}

// TableName overrides the gorm table name
func (Transaction) TableName() string {
	return "transactions"
}

// ToEntity converts the database row to a domain transaction
func (t *Transaction) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		ReferenceID: t.ReferenceID,
		AmountCents: t.Amount,
		Type:        entity.TransactionType(t.Type),
		Status:      entity.TransactionStatus(t.Status),
		Description: t.Description,
		RelatedID:   t.RelatedID,
		Metadata:    map[string]any(t.Metadata),
		CreatedAt:   t.CreatedAt,
		ProcessedAt: t.ProcessedAt,
	}
}

// TransactionFromEntity converts a domain transaction to its database row
func TransactionFromEntity(txn *entity.Transaction) *Transaction {
	return &Transaction{
		ID:          txn.ID,
		UserID:      txn.UserID,
		ReferenceID: txn.ReferenceID,
		Amount:      txn.AmountCents,
		Type:        string(txn.Type),
		Status:      string(txn.Status),
		Description: txn.Description,
		RelatedID:   txn.RelatedID,
		Metadata:    JSONMap(txn.Metadata),
		CreatedAt:   txn.CreatedAt,
		ProcessedAt: txn.ProcessedAt,
	}
}
