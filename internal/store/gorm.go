package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skyvoyager/internal/models"
)

// GormStore persists values in the store_entries table of a SQL database
// (SQLite or PostgreSQL).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a GormStore on top of an open GORM connection. The
// store_entries table must already exist (see database.Manager).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value under key.
func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry models.StoreEntry
	if err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

// Set upserts the value under key.
func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StoreEntry{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes key.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&models.StoreEntry{}).Error
}
