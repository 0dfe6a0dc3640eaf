package models

// MaxProductNameLen bounds the unique product name.
const MaxProductNameLen = 30

// Product is a catalogue item. Price is an integer amount in minor units and
// is never negative.
type Product struct {
	Model
	Name        string `gorm:"size:30;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
}
