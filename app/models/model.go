// Package models holds the persisted domain entities.
package models

import "time"

// Model is the base embedded in every entity. Unlike gorm.Model it carries no
// DeletedAt: deletes are hard deletes, so unique constraints (product name,
// one review per user+product) hold again after a row is removed.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
