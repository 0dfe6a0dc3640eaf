package repositories

import (
	"time"

	"gorm.io/gorm"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/pkg/metrics"
)

// OrderRepository handles database operations for Order and its line items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns one page of orders matching the filter. A non-zero ownerID
// scopes the result to that user's orders; staff callers pass 0 to see all.
func (r *OrderRepository) List(f filters.OrderFilter, ownerID uint, page, limit int) ([]models.Order, Pagination, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	q := f.Apply(r.db.Model(&models.Order{}))
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}
	q = q.Preload("Items")

	var orders []models.Order
	pagination, err := paginate(q, page, limit, &orders)
	return orders, pagination, err
}

// Find looks up an order with its line items.
func (r *OrderRepository) Find(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	return order, err
}

// Create persists the order and its line items as one transaction.
func (r *OrderRepository) Create(order *models.Order) error {
	defer metrics.ObserveDBQuery("insert", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// UpdateStatus persists a status change.
func (r *OrderRepository) UpdateStatus(order *models.Order, status string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	order.Status = status
	return r.db.Model(order).Update("status", status).Error
}

// Delete removes an order together with its line items.
// Returns gorm.ErrRecordNotFound when id is unknown.
func (r *OrderRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
