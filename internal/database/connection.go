// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecowardrobe/eco-wardrobe-backend/internal/config"
	"github.com/ecowardrobe/eco-wardrobe-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger; translated errors let callers match
	// gorm.ErrDuplicatedKey on unique violations.
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		}
	} else {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Info),
			TranslateError: true,
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.ProductPassport{},
		&models.ShareToken{},
		&models.SavedLink{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes and cascade constraints
	if err := createConstraints(db); err != nil {
		return fmt.Errorf("failed to create constraints: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// createConstraints adds the foreign keys that make user deletion cascade
// through passports, issued tokens and links in both directions.
func createConstraints(db *gorm.DB) error {
	statements := []string{
		// Passports belong to their owner; removing the owner removes them.
		`DO $$ BEGIN
			ALTER TABLE product_passports ADD CONSTRAINT fk_passports_owner
				FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

		// Share tokens belong to their issuer.
		`DO $$ BEGIN
			ALTER TABLE share_tokens ADD CONSTRAINT fk_share_tokens_issuer
				FOREIGN KEY (issuer_id) REFERENCES users(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

		// Links are removed with either endpoint.
		`DO $$ BEGIN
			ALTER TABLE saved_links ADD CONSTRAINT fk_saved_links_viewer
				FOREIGN KEY (viewer_id) REFERENCES users(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE saved_links ADD CONSTRAINT fk_saved_links_owner
				FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE;
		EXCEPTION WHEN duplicate_object THEN NULL; END $$`,

		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_influencer ON users(is_influencer)",
		"CREATE INDEX IF NOT EXISTS idx_passports_owner ON product_passports(owner_id)",
		"CREATE INDEX IF NOT EXISTS idx_share_tokens_code ON share_tokens(code)",
		"CREATE INDEX IF NOT EXISTS idx_saved_links_viewer ON saved_links(viewer_id)",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("Warning: failed to apply constraint: %v", err)
			// Continue with the remaining statements
		}
	}

	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
