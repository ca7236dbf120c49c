// Package testutil provides test helpers for setting up stores, creating
// fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

// SetupTestDB creates an in-memory SQLite database with the store table
// migrated. Each call gets its own database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", nextID())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { TeardownTestDB(t, db) })
	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}

// SetupTestStore returns a store backed by a fresh in-memory SQLite database,
// so service tests exercise the same JSON round trip as production.
func SetupTestStore(t *testing.T) store.Store {
	t.Helper()
	return store.NewGormStore(SetupTestDB(t))
}
