// Package database manages the GORM connection for the resolved operating mode.
package database

import (
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"perawise/internal/config"
	"perawise/internal/logger"
	"perawise/internal/models"
)

// allModels is migrated automatically in MOCK mode; DEV/LIVE use SQL
// migrations instead.
var allModels = []interface{}{
	&models.Profile{},
	&models.OnboardingResponse{},
	&models.OnboardingProfile{},
	&models.ContentItem{},
}

// Manager owns the database handle for the process.
type Manager struct {
	db   *gorm.DB
	mode config.Mode
	dsn  string
}

// NewManager opens a database for the resolved mode: an in-memory SQLite
// store in MOCK mode, Postgres otherwise.
func NewManager(cfg *config.Config) (*Manager, error) {
	if cfg.Mode == config.ModeMock {
		db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open in-memory store: %w", err)
		}
		logger.Get().Info("Using in-memory SQLite store")
		return &Manager{db: db, mode: cfg.Mode}, nil
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL_%s is not set", cfg.Mode)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, mode: cfg.Mode, dsn: cfg.DatabaseURL}, nil
}

// Migrate brings the schema up to date. MOCK mode auto-migrates the models;
// DEV/LIVE apply the SQL migrations from the migrations/ directory.
func (m *Manager) Migrate() error {
	if m.mode == config.ModeMock {
		return m.db.AutoMigrate(allModels...)
	}

	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
