package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rs/zerolog/log"

	"github.com/Mtaasisi/NEON-POS-sub021/pkg/models"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	database, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

// RunMigrations runs database migrations using GORM
func RunMigrations(database *gorm.DB) error {
	log.Info().Msg("Running GORM AutoMigrate...")

	if err := database.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Warn().Err(err).Msg("Could not create uuid-ossp extension")
	}

	if err := database.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(database); err != nil {
		log.Warn().Err(err).Msg("Failed to create some custom indexes")
	}

	log.Info().Msg("GORM AutoMigrate completed")
	return nil
}

// createCustomIndexes creates indexes that GORM does not handle from tags
func createCustomIndexes(database *gorm.DB) error {
	indexes := []string{
		// SKUs must be unique within a tenant's catalog; the import engine
		// relies on this for deterministic resolution
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_variants_tenant_sku ON product_variants(tenant_id, sku) WHERE deleted_at IS NULL`,

		// Barcodes collide across suppliers, so only index for lookup speed
		`CREATE INDEX IF NOT EXISTS idx_variants_tenant_barcode ON product_variants(tenant_id, barcode) WHERE barcode != ''`,
	}

	for _, idx := range indexes {
		if err := database.Exec(idx).Error; err != nil {
			return err
		}
	}

	return nil
}
