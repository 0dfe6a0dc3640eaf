package models

// Review is a user's rating of a product. The composite unique index holds
// the one-review-per-user-per-product invariant at the storage level; the
// service layer checks it first to return a proper validation error.
type Review struct {
	Model
	UserID    uint   `gorm:"not null;index;uniqueIndex:idx_reviews_user_product" json:"user_id"`
	ProductID uint   `gorm:"not null;index;uniqueIndex:idx_reviews_user_product" json:"product_id"`
	Text      string `gorm:"type:text;not null" json:"text"`
	Rating    int    `gorm:"not null" json:"rating"`

	User    User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

const (
	MinRating = 1
	MaxRating = 5
)
