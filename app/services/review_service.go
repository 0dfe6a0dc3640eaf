package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/app/repositories"
)

// ReviewInput is the create request body for a review.
type ReviewInput struct {
	ProductID uint   `json:"product_id"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
}

// ReviewUpdateInput mutates text and rating; a review never moves to another
// product or user.
type ReviewUpdateInput struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

type ReviewService struct {
	reviews  *repositories.ReviewRepository
	products *repositories.ProductRepository
}

func NewReviewService(reviews *repositories.ReviewRepository, products *repositories.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// List returns one page of reviews matching the filter.
func (s *ReviewService) List(f filters.ReviewFilter, page, limit int) ([]models.Review, repositories.Pagination, error) {
	return s.reviews.List(f, page, limit)
}

// Find loads one review.
func (s *ReviewService) Find(id uint) (models.Review, error) {
	return s.reviews.Find(id)
}

// Create validates and persists a new review for the given user.
// A user holds at most one review per product.
func (s *ReviewService) Create(userID uint, in ReviewInput) (models.Review, map[string]string, error) {
	errs := validateReviewBody(in.Text, in.Rating)

	if in.ProductID == 0 {
		errs["product_id"] = "The product_id field is required."
	} else {
		if _, err := s.products.Find(in.ProductID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Review{}, nil, err
			}
			errs["product_id"] = fmt.Sprintf("product %d does not exist", in.ProductID)
		}
	}

	if _, ok := errs["product_id"]; !ok {
		exists, err := s.reviews.ExistsForUserAndProduct(userID, in.ProductID)
		if err != nil {
			return models.Review{}, nil, err
		}
		if exists {
			errs["product_id"] = "You have already reviewed this product."
		}
	}

	if len(errs) > 0 {
		return models.Review{}, errs, nil
	}

	review := models.Review{
		UserID:    userID,
		ProductID: in.ProductID,
		Text:      strings.TrimSpace(in.Text),
		Rating:    in.Rating,
	}
	if err := s.reviews.Create(&review); err != nil {
		return models.Review{}, nil, err
	}
	return review, nil, nil
}

// Update validates and persists changes to an existing review.
func (s *ReviewService) Update(review *models.Review, in ReviewUpdateInput) (map[string]string, error) {
	errs := validateReviewBody(in.Text, in.Rating)
	if len(errs) > 0 {
		return errs, nil
	}

	review.Text = strings.TrimSpace(in.Text)
	review.Rating = in.Rating
	return nil, s.reviews.Save(review)
}

// Delete removes a review.
func (s *ReviewService) Delete(id uint) error {
	return s.reviews.Delete(id)
}

func validateReviewBody(text string, rating int) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(text) == "" {
		errs["text"] = "The text field is required."
	}
	if rating < models.MinRating || rating > models.MaxRating {
		errs["rating"] = fmt.Sprintf("The rating must be between %d and %d.", models.MinRating, models.MaxRating)
	}
	return errs
}
