// Package testutil provides in-memory database setup and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"disasterhub/internal/db"
	"disasterhub/internal/logger"
)

// SetupTestDB creates an isolated in-memory SQLite database with all models migrated.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	// sqlite in shared-cache mode rejects concurrent writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gormDB, false, logger.Discard()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gormDB
}
