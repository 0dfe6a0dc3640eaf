package services

import (
	"fmt"
	"strings"
	"time"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/app/repositories"
	"shopapi/pkg/cache"
)

// productListCacheKey caches the default unfiltered first page, the hot path
// for storefront landing requests. Filtered lists always hit the database.
const productListCacheKey = "products:list:default"

const productListTTL = 5 * time.Minute

// ProductInput is the create/update request body for a product.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(products *repositories.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

type productPage struct {
	Items      []models.Product        `json:"items"`
	Pagination repositories.Pagination `json:"pagination"`
}

// List returns one page of products, serving the default page from Redis
// when possible.
func (s *ProductService) List(f filters.ProductFilter, page, limit int) ([]models.Product, repositories.Pagination, error) {
	cacheable := f == (filters.ProductFilter{}) && page <= 1 && limit == 0

	if cacheable {
		var cached productPage
		if cache.Get(productListCacheKey, &cached) {
			return cached.Items, cached.Pagination, nil
		}
	}

	items, pagination, err := s.products.List(f, page, limit)
	if err != nil {
		return nil, repositories.Pagination{}, err
	}

	if cacheable {
		_ = cache.Set(productListCacheKey, productPage{Items: items, Pagination: pagination}, productListTTL)
	}
	return items, pagination, nil
}

// Find loads one product.
func (s *ProductService) Find(id uint) (models.Product, error) {
	return s.products.Find(id)
}

// Create validates and persists a new product.
func (s *ProductService) Create(in ProductInput) (models.Product, map[string]string, error) {
	errs, err := s.validate(in, 0)
	if err != nil {
		return models.Product{}, nil, err
	}
	if len(errs) > 0 {
		return models.Product{}, errs, nil
	}

	product := models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
	}
	if err := s.products.Create(&product); err != nil {
		return models.Product{}, nil, err
	}

	_ = cache.Del(productListCacheKey)
	return product, nil, nil
}

// Update validates and persists changes to an existing product.
func (s *ProductService) Update(product *models.Product, in ProductInput) (map[string]string, error) {
	errs, err := s.validate(in, product.ID)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return errs, nil
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	if err := s.products.Save(product); err != nil {
		return nil, err
	}

	_ = cache.Del(productListCacheKey)
	return nil, nil
}

// Delete removes a product.
func (s *ProductService) Delete(id uint) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	_ = cache.Del(productListCacheKey)
	return nil
}

func (s *ProductService) validate(in ProductInput, excludeID uint) (map[string]string, error) {
	errs := map[string]string{}

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		errs["name"] = "The name field is required."
	case len([]rune(name)) > models.MaxProductNameLen:
		errs["name"] = fmt.Sprintf("The name must not exceed %d characters.", models.MaxProductNameLen)
	default:
		taken, err := s.products.ExistsByName(name, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs["name"] = "The name has already been taken."
		}
	}

	if in.Price < 0 {
		errs["price"] = "The price must be at least 0."
	}

	return errs, nil
}
