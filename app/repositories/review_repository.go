package repositories

import (
	"time"

	"gorm.io/gorm"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/pkg/metrics"
)

// ReviewRepository handles database operations for Review.
type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// List returns one page of reviews matching the filter.
func (r *ReviewRepository) List(f filters.ReviewFilter, page, limit int) ([]models.Review, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var reviews []models.Review
	q := f.Apply(r.db.Model(&models.Review{}))
	pagination, err := paginate(q, page, limit, &reviews)
	return reviews, pagination, err
}

// Find looks up a review by primary key.
func (r *ReviewRepository) Find(id uint) (models.Review, error) {
	var review models.Review
	err := r.db.First(&review, id).Error
	return review, err
}

// ExistsForUserAndProduct reports whether the user already reviewed the
// product.
func (r *ReviewRepository) ExistsForUserAndProduct(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new review.
func (r *ReviewRepository) Create(review *models.Review) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(review).Error
}

// Save persists changes to an existing review.
func (r *ReviewRepository) Save(review *models.Review) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(review).Error
}

// Delete removes a review. Returns gorm.ErrRecordNotFound when id is unknown.
func (r *ReviewRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
