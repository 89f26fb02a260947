package models

import "time"

// SessionEntry is one key of the client's credential store.
type SessionEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
