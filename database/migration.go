package database

import (
	"fmt"
	"log"

	"github.com/Alas-3/syrincal-system/models"
	"gorm.io/gorm"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	log.Println("Starting GORM AutoMigrate...")

	if err := db.Exec("CREATE SCHEMA IF NOT EXISTS syrincal").Error; err != nil {
		log.Printf("Warning: Could not create schema: %v", err)
	}

	if err := db.Exec("SET search_path TO syrincal").Error; err != nil {
		return fmt.Errorf("failed to set search path: %w", err)
	}

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("Creating indexes...")
	if err := CreateIndexes(db); err != nil {
		log.Printf("Warning: Some indexes could not be created: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// CreateIndexes creates the indexes the report queries lean on
func CreateIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales(sale_date)",
		"CREATE INDEX IF NOT EXISTS idx_sales_client_name ON sales(client_name)",
		"CREATE INDEX IF NOT EXISTS idx_products_purchase_date ON products(purchase_date)",
		"CREATE INDEX IF NOT EXISTS idx_products_expiration_date ON products(expiration_date)",
		"CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Printf("  ⚠ Warning: Could not create index: %v", err)
		}
	}

	return nil
}

// DropAllTables drops all application tables. Used by tests and the
// -migrate reset path only.
func DropAllTables(db *gorm.DB) error {
	for _, model := range models.AllModels() {
		if err := db.Migrator().DropTable(model); err != nil {
			return err
		}
	}
	return nil
}
