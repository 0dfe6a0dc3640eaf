package services

import (
	"fmt"
	"strings"
	"time"

	"shopapi/app/models"
	"shopapi/app/repositories"
	"shopapi/pkg/cache"
)

const collectionListCacheKey = "collections:list:default"

const collectionListTTL = 5 * time.Minute

// CollectionInput is the create/update request body for a collection.
// Products carries bare product ids; they are not checked against the
// catalogue.
type CollectionInput struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Products []uint `json:"products"`
}

type CollectionService struct {
	collections *repositories.CollectionRepository
}

func NewCollectionService(collections *repositories.CollectionRepository) *CollectionService {
	return &CollectionService{collections: collections}
}

type collectionPage struct {
	Items      []models.Collection     `json:"items"`
	Pagination repositories.Pagination `json:"pagination"`
}

// List returns one page of collections, serving the default page from Redis
// when possible.
func (s *CollectionService) List(page, limit int) ([]models.Collection, repositories.Pagination, error) {
	cacheable := page <= 1 && limit == 0

	if cacheable {
		var cached collectionPage
		if cache.Get(collectionListCacheKey, &cached) {
			return cached.Items, cached.Pagination, nil
		}
	}

	items, pagination, err := s.collections.List(page, limit)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}

	if cacheable {
		_ = cache.Set(collectionListCacheKey, collectionPage{Items: items, Pagination: pagination}, collectionListTTL)
	}
	return items, pagination, nil
}

// Find loads one collection.
func (s *CollectionService) Find(id uint) (models.Collection, error) {
	return s.collections.Find(id)
}

// Create validates and persists a new collection.
func (s *CollectionService) Create(in CollectionInput) (models.Collection, map[string]string, error) {
	errs, err := s.validate(in, 0)
	if err != nil {
		return models.Collection{}, nil, err
	}
	if len(errs) > 0 {
		return models.Collection{}, errs, nil
	}

	collection := models.Collection{
		Title:    strings.TrimSpace(in.Title),
		Text:     in.Text,
		Products: in.Products,
	}
	if err := s.collections.Create(&collection); err != nil {
		return models.Collection{}, nil, err
	}

	_ = cache.Del(collectionListCacheKey)
	return collection, nil, nil
}

// Update validates and persists changes to an existing collection.
func (s *CollectionService) Update(collection *models.Collection, in CollectionInput) (map[string]string, error) {
	errs, err := s.validate(in, collection.ID)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return errs, nil
	}

	collection.Title = strings.TrimSpace(in.Title)
	collection.Text = in.Text
	collection.Products = in.Products
	if err := s.collections.Save(collection); err != nil {
		return nil, err
	}

	_ = cache.Del(collectionListCacheKey)
	return nil, nil
}

// Delete removes a collection.
func (s *CollectionService) Delete(id uint) error {
	if err := s.collections.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(collectionListCacheKey)
	return nil
}

func (s *CollectionService) validate(in CollectionInput, excludeID uint) (map[string]string, error) {
	errs := map[string]string{}

	title := strings.TrimSpace(in.Title)
	switch {
	case title == "":
		errs["title"] = "The title field is required."
	case len([]rune(title)) > models.MaxCollectionTitleLen:
		errs["title"] = fmt.Sprintf("The title must not exceed %d characters.", models.MaxCollectionTitleLen)
	default:
		taken, err := s.collections.ExistsByTitle(title, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["title"] = "The title has already been taken."
		}
	}

	if strings.TrimSpace(in.Text) == "" {
		errs["text"] = "The text field is required."
	}

	return errs, nil
}
