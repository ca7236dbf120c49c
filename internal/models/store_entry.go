package models

import "time"

// StoreEntry is one row of the relational key/value table backing the
// persisted store. Value holds the whole JSON document for Key.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:255" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name shared with the SQL migrations.
func (StoreEntry) TableName() string {
	return "store_entries"
}
