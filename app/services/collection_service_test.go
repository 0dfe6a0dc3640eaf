package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopapi/app/models"
	"shopapi/app/repositories"
	"shopapi/app/services"
)

func newCollectionService(t *testing.T) (*services.CollectionService, *gorm.DB) {
	t.Helper()

	db := testDB(t)
	return services.NewCollectionService(repositories.NewCollectionRepository(db)), db
}

func TestCreateCollection(t *testing.T) {
	svc, db := newCollectionService(t)
	beans := seedProduct(t, db, "Beans", 100)
	mug := seedProduct(t, db, "Mug", 900)

	collection, errs, err := svc.Create(services.CollectionInput{
		Title:    "Starter Kit",
		Text:     "First brew essentials.",
		Products: []uint{beans.ID, mug.ID},
	})
	require.NoError(t, err)
	require.Empty(t, errs)

	reloaded, err := svc.Find(collection.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{beans.ID, mug.ID}, reloaded.Products)
}

func TestCreateCollectionValidation(t *testing.T) {
	svc, _ := newCollectionService(t)

	tests := []struct {
		name  string
		in    services.CollectionInput
		field string
	}{
		{"missing title", services.CollectionInput{Text: "t"}, "title"},
		{"title too long", services.CollectionInput{Title: strings.Repeat("x", models.MaxCollectionTitleLen+1), Text: "t"}, "title"},
		{"missing text", services.CollectionInput{Title: "Kit"}, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs, err := svc.Create(tt.in)
			require.NoError(t, err)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestCreateCollectionDuplicateTitle(t *testing.T) {
	svc, _ := newCollectionService(t)

	_, errs, err := svc.Create(services.CollectionInput{Title: "Kit", Text: "a"})
	require.NoError(t, err)
	require.Empty(t, errs)

	_, errs, err = svc.Create(services.CollectionInput{Title: "Kit", Text: "b"})
	require.NoError(t, err)
	assert.Equal(t, "The title has already been taken.", errs["title"])
}

func TestCollectionMayReferenceMissingProducts(t *testing.T) {
	svc, _ := newCollectionService(t)

	// Product ids are not checked against the catalogue.
	_, errs, err := svc.Create(services.CollectionInput{
		Title:    "Ghost Kit",
		Text:     "References nothing real.",
		Products: []uint{12345},
	})
	require.NoError(t, err)
	assert.Empty(t, errs)
}
