// Package models contains data structures for the application's domain models.
package models

// Topic represents a content category articles are filed under.
// Topics are pre-seeded and immutable; other entities reference them by slug.
type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}
