package services

import (
	"math"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"DoceGestor/app/config"
	"DoceGestor/app/database"
)

// testPricing mirrors the default production pricing configuration.
var testPricing = config.PricingConfig{
	ResaleDiscount: 0.85,
	DefaultMargin:  35,
}

// setupTestDB opens a private in-memory database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second pooled connection would see an empty memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func boolp(b bool) *bool {
	return &b
}

// stubPublisher records published events for assertions.
type stubPublisher struct {
	events []string
}

func (p *stubPublisher) Publish(eventType string, data interface{}) {
	p.events = append(p.events, eventType)
}

func (p *stubPublisher) count(eventType string) int {
	n := 0
	for _, e := range p.events {
		if e == eventType {
			n++
		}
	}
	return n
}
