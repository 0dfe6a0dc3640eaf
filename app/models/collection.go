package models

// MaxCollectionTitleLen bounds the unique collection title.
const MaxCollectionTitleLen = 40

// Collection is a staff-curated set of products. Products is stored as a JSON
// column holding bare product ids with no foreign key, so a collection may
// reference products that no longer exist.
type Collection struct {
	Model
	Title    string `gorm:"size:40;uniqueIndex;not null" json:"title"`
	Text     string `gorm:"type:text;not null" json:"text"`
	Products []uint `gorm:"serializer:json" json:"products"`
}
