package repositories

import (
	"time"

	"gorm.io/gorm"

	"shopapi/app/models"
	"shopapi/pkg/metrics"
)

// CollectionRepository handles database operations for Collection.
type CollectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// List returns one page of collections.
func (r *CollectionRepository) List(page, limit int) ([]models.Collection, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var collections []models.Collection
	pagination, err := paginate(r.db.Model(&models.Collection{}), page, limit, &collections)
	return collections, pagination, err
}

// Find looks up a collection by primary key.
func (r *CollectionRepository) Find(id uint) (models.Collection, error) {
	var collection models.Collection
	err := r.db.First(&collection, id).Error
	return collection, err
}

// ExistsByTitle reports whether another collection already uses the title.
func (r *CollectionRepository) ExistsByTitle(title string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Collection{}).
		Where("title = ? AND id <> ?", title, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new collection.
func (r *CollectionRepository) Create(collection *models.Collection) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(collection).Error
}

// Save persists changes to an existing collection.
func (r *CollectionRepository) Save(collection *models.Collection) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return r.db.Save(collection).Error
}

// Delete removes a collection. Returns gorm.ErrRecordNotFound when id is
// unknown.
func (r *CollectionRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	res := r.db.Delete(&models.Collection{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
