package testutils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thomasdhughes/realworld/config"
	"github.com/thomasdhughes/realworld/internal/model"
)

// SetupTestDB creates an isolated in-memory sqlite database per test.
// Automatically migrates all tables before returning the connection.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Suppress logs in tests
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// A ":memory:" database exists per connection; keep the pool at one
	// so every query sees the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Initialize all tables
	if err := model.InitTable(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SetupTestConfig installs a minimal configuration for tests that issue
// or parse tokens.
func SetupTestConfig() {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireDays: 60,
		},
	}
}
