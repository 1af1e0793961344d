package models

import "time"

// Logical keys under which tracker records are persisted.
const (
	KeyLoginStreak    = "login:streak"
	KeyDeedCategories = "deeds:categories"
	KeyDeedProgress   = "deeds:progress"
	KeyDeedStreaks    = "deeds:streaks"
	KeyRamadanWindow  = "ramadan:window"
	KeyVerseRead      = "verse:read"
)

// StateRecord is one persisted tracker record: a JSON blob under a logical key.
type StateRecord struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Value     []byte    `gorm:"type:mediumblob" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name short and stable.
func (StateRecord) TableName() string {
	return "state_records"
}
