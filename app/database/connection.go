package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"DoceGestor/app/config"
	"DoceGestor/app/models"
)

var db *gorm.DB

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// SetDB replaces the database instance (useful for testing)
func SetDB(conn *gorm.DB) {
	db = conn
}

// buildPostgresDSN constructs the connection string from config.
// DATABASE_URL wins over individual variables.
func buildPostgresDSN(cfg config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)
}

// Initialize sets up the database connection and runs migrations.
// Postgres is used when a URL or host is configured; otherwise a local
// SQLite file keeps single-user installs dependency-free.
func Initialize(cfg config.DatabaseConfig) error {
	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var err error
	if cfg.URL != "" || cfg.Host != "" {
		gormConfig.PrepareStmt = true
		db, err = gorm.Open(postgres.Open(buildPostgresDSN(cfg)), gormConfig)
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				return fmt.Errorf("failed to create database directory: %w", mkErr)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormConfig)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return Migrate(db)
}

// Migrate creates or updates the schema for all domain tables.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.Ingredient{},
		&models.IngredientLot{},
		&models.IngredientMovement{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.ProductionEvent{},
		&models.ScheduleItem{},
		&models.Product{},
		&models.ProductMovement{},
		&models.Customer{},
		&models.Reseller{},
		&models.Expense{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Quote{},
		&models.QuoteItem{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
