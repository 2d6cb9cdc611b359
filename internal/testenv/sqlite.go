// Package testenv provides databases and containers for tests and local runs.
package testenv

import (
	"path/filepath"
	"testing"

	"github.com/localnerve/gamesdb/internal/config"
	"github.com/localnerve/gamesdb/internal/database"
	"gorm.io/gorm"
)

// OpenSQLite creates a migrated, file backed SQLite database that is closed when the test ends.
// A single connection keeps every statement on the same handle.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "games.db"),
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
	}

	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}
