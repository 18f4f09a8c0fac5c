package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/credsvc/internal/infrastructure/repositories"
)

// Open connects to the configured backend. Postgres DSNs get the postgres
// driver; anything else is treated as a SQLite path, which the reference
// deployment uses. TranslateError makes unique-constraint violations
// surface as gorm.ErrDuplicatedKey on both drivers.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), config)
	}
	return gorm.Open(sqlite.Open(dsn), config)
}

// AutoMigrate creates the users, sessions and tokens tables.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBSession{},
		&repositories.DBToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
