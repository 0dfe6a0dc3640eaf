package models

// User is an account that can review products and place orders.
// IsStaff grants write access to products and collections and full access to
// orders and reviews.
type User struct {
	Model
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	IsStaff  bool   `gorm:"not null;default:false" json:"is_staff"`
}
