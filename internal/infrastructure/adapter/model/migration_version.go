package model

import "time"

// MigrationVersion tracks applied schema versions
type MigrationVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"size:16;not null"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"size:255"`
}

// TableName overrides the gorm table name
func (MigrationVersion) TableName() string {
	return "migration_versions"
}
