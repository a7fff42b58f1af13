package models

import "time"

// Article is the persisted publication entity. The slug is its unique,
// immutable storage key; every other field is overwritten on re-import.
type Article struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Slug is the normalized path-safe identifier, unique per article.
	Slug  string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Title string `gorm:"size:512;not null" json:"title"`

	// HTML is the canonical sanitized body; never empty for a stored article.
	HTML string `gorm:"type:longtext" json:"html"`

	// Image is the cover image URL; falls back to the placeholder, never empty.
	Image string `gorm:"size:1024" json:"image"`

	// Summary is the teaser paragraph; may be empty.
	Summary string `gorm:"size:512" json:"summary"`

	// Date is a display string, not a timestamp; "Archive" when unknown.
	Date string `gorm:"size:64" json:"date"`

	Category  string `gorm:"size:128" json:"category"`
	Published bool   `json:"published"`

	AuthorID uint `json:"author_id"`
	EditorID uint `json:"editor_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is a minimal principal record. Imports run as the system user, which
// is created idempotently and referenced as author/editor of batch content.
type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Username    string `gorm:"uniqueIndex;size:64;not null" json:"username"`
	DisplayName string `gorm:"size:128" json:"display_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SystemUsername identifies the principal used for batch-imported content.
const SystemUsername = "system"

// SystemDisplayName is shown as the byline of imported articles.
const SystemDisplayName = "Focode Magazine"
