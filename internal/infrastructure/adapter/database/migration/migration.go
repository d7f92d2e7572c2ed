package migration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	coreport "github.com/fundedpeak/portal-api/internal/domain/port/core"
	"github.com/fundedpeak/portal-api/internal/infrastructure/adapter/model"
)

// CurrentSchemaVersion represents the current database schema version
const CurrentSchemaVersion = "1.0.0"

// Manager manages database migrations
type Manager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.currentVersion(context.Background())
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createConstraints(); err != nil {
		m.logger.Error("Failed to create constraints", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.setVersion(context.Background(), CurrentSchemaVersion, "Full schema migration"); err != nil {
		m.logger.Error("Failed to update schema version", map[string]any{
			"error":   err.Error(),
			"version": CurrentSchemaVersion,
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// currentVersion gets the latest applied migration version
func (m *Manager) currentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// setVersion records a new migration version
func (m *Manager) setVersion(ctx context.Context, version string, details string) error {
	record := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}
	return m.db.WithContext(ctx).Create(&record).Error
}

// autoMigrateModels auto-migrates database models
func (m *Manager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Referral{},
		&model.Transaction{},
	)
}

// createConstraints adds the check constraints AutoMigrate cannot express.
// The balance check is the database-level backstop for the conditional
// update in the user repository.
func (m *Manager) createConstraints() error {
	m.logger.Info("Creating database constraints", nil)

	statements := []string{
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS chk_users_wallet_balance_non_negative`,
		`ALTER TABLE users ADD CONSTRAINT chk_users_wallet_balance_non_negative CHECK (wallet_balance >= 0)`,
		`ALTER TABLE referrals DROP CONSTRAINT IF EXISTS chk_referrals_no_self_referral`,
		`ALTER TABLE referrals ADD CONSTRAINT chk_referrals_no_self_referral CHECK (referrer_id <> referred_user_id)`,
		`ALTER TABLE transactions DROP CONSTRAINT IF EXISTS chk_transactions_amount_non_zero`,
		`ALTER TABLE transactions ADD CONSTRAINT chk_transactions_amount_non_zero CHECK (amount <> 0)`,
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
