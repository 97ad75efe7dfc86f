package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shreyanshTechz/attendance-backend/internal/infrastructure/repositories"
)

// Open creates a new database connection
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// AutoMigrate creates or updates the application tables and the Casbin
// policy table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBAttendance{},
		&repositories.DBTask{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	// The adapter creates the casbin_rules table on first use.
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}
	return nil
}
