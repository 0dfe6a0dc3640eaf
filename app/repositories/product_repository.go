package repositories

import (
	"time"

	"gorm.io/gorm"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/pkg/metrics"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns one page of products matching the filter.
func (r *ProductRepository) List(f filters.ProductFilter, page, limit int) ([]models.Product, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var products []models.Product
	q := f.Apply(r.db.Model(&models.Product{}))
	pagination, err := paginate(q, page, limit, &products)
	return products, pagination, err
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

// FindAll resolves a set of product ids, returning them keyed by id.
// Missing ids are simply absent from the map.
func (r *ProductRepository) FindAll(ids []uint) (map[uint]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}

// ExistsByName reports whether another product already uses the name.
func (r *ProductRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *models.Product) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(product).Error
}

// Delete removes a product. Returns gorm.ErrRecordNotFound when id is unknown.
func (r *ProductRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
