package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserData is a per-user JSON blob keyed by data kind (srs_deck, preferences).
type UserData struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_key" json:"user_id"`
	DataKey   string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_key" json:"data_key"`
	DataJSON  datatypes.JSON `gorm:"type:json" json:"data_json"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Feedback is a stored user feedback entry, optionally tied to a translation.
type Feedback struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Sentence       string    `gorm:"type:text" json:"sentence,omitempty"`
	Translation    string    `gorm:"type:text" json:"translation,omitempty"`
	TargetLanguage string    `gorm:"type:varchar(8)" json:"target_language,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// BadTranslation records a sentence+translation+language combo reported as low
// quality, so it is evicted from the cache and not re-cached verbatim.
type BadTranslation struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Hash           string    `gorm:"type:varchar(64);not null;unique" json:"hash"`
	Sentence       string    `gorm:"type:text" json:"sentence"`
	Translation    string    `gorm:"type:text" json:"translation"`
	TargetLanguage string    `gorm:"type:varchar(8)" json:"target_language"`
	Count          int       `gorm:"default:1" json:"count"`
	LastReportedAt time.Time `json:"last_reported_at"`
}
