package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopapi/app/filters"
	"shopapi/app/repositories"
	"shopapi/app/services"
)

func newReviewService(t *testing.T) (*services.ReviewService, *gorm.DB) {
	t.Helper()

	db := testDB(t)
	reviews := repositories.NewReviewRepository(db)
	products := repositories.NewProductRepository(db)
	return services.NewReviewService(reviews, products), db
}

func TestCreateReview(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "reader@example.com", false)
	product := seedProduct(t, db, "Beans", 100)

	review, errs, err := svc.Create(user.ID, services.ReviewInput{
		ProductID: product.ID,
		Text:      "Great crema.",
		Rating:    5,
	})
	require.NoError(t, err)
	require.Empty(t, errs)

	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, product.ID, review.ProductID)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewValidation(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "reader@example.com", false)
	product := seedProduct(t, db, "Beans", 100)

	tests := []struct {
		name  string
		in    services.ReviewInput
		field string
	}{
		{"missing text", services.ReviewInput{ProductID: product.ID, Rating: 3}, "text"},
		{"rating too low", services.ReviewInput{ProductID: product.ID, Text: "ok", Rating: 0}, "rating"},
		{"rating too high", services.ReviewInput{ProductID: product.ID, Text: "ok", Rating: 6}, "rating"},
		{"missing product", services.ReviewInput{Text: "ok", Rating: 3}, "product_id"},
		{"unknown product", services.ReviewInput{ProductID: 9999, Text: "ok", Rating: 3}, "product_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := svc.Create(user.ID, tt.in)
			require.NoError(t, err)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestCreateReviewOnePerUserAndProduct(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "reader@example.com", false)
	other := seedUser(t, db, "other@example.com", false)
	product := seedProduct(t, db, "Beans", 100)

	_, errs, err := svc.Create(user.ID, services.ReviewInput{ProductID: product.ID, Text: "First take.", Rating: 4})
	require.NoError(t, err)
	require.Empty(t, errs)

	_, errs, err = svc.Create(user.ID, services.ReviewInput{ProductID: product.ID, Text: "Second take.", Rating: 2})
	require.NoError(t, err)
	assert.Equal(t, "You have already reviewed this product.", errs["product_id"])

	// A different user may still review the same product.
	_, errs, err = svc.Create(other.ID, services.ReviewInput{ProductID: product.ID, Text: "Fine.", Rating: 3})
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestReviewRepostableAfterDelete(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "reader@example.com", false)
	product := seedProduct(t, db, "Beans", 100)

	review, errs, err := svc.Create(user.ID, services.ReviewInput{ProductID: product.ID, Text: "First.", Rating: 4})
	require.NoError(t, err)
	require.Empty(t, errs)

	require.NoError(t, svc.Delete(review.ID))

	_, errs, err = svc.Create(user.ID, services.ReviewInput{ProductID: product.ID, Text: "Again.", Rating: 5})
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestListReviewsByProduct(t *testing.T) {
	svc, db := newReviewService(t)
	user := seedUser(t, db, "reader@example.com", false)
	beans := seedProduct(t, db, "Beans", 100)
	mug := seedProduct(t, db, "Mug", 900)

	_, _, err := svc.Create(user.ID, services.ReviewInput{ProductID: beans.ID, Text: "ok", Rating: 3})
	require.NoError(t, err)
	_, _, err = svc.Create(user.ID, services.ReviewInput{ProductID: mug.ID, Text: "ok", Rating: 3})
	require.NoError(t, err)

	items, _, err := svc.List(filters.ReviewFilter{ProductID: &beans.ID}, 1, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, beans.ID, items[0].ProductID)
}
