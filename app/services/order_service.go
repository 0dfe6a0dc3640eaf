// Package services holds the business rules between the controllers and the
// repositories. Every service reports input problems as a map of
// field → message, which the HTTP layer turns into a 400 response.
package services

import (
	"fmt"

	"shopapi/app/filters"
	"shopapi/app/models"
	"shopapi/app/repositories"
	"shopapi/pkg/metrics"
)

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// OrderInput is the create-order request body.
type OrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// OrderStatusInput is the staff-only update body; status is the only field an
// order exposes for mutation.
type OrderStatusInput struct {
	Status string `json:"status"`
}

type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// Place validates the requested line items, prices the order from the
// current catalogue, and persists order + items atomically.
//
// The unit price of each item is snapshotted into the line item, so a later
// product price change never alters an existing order's total.
func (s *OrderService) Place(userID uint, in OrderInput) (models.Order, map[string]string, error) {
	if len(in.Items) == 0 {
		return models.Order{}, map[string]string{"items": "order cannot be empty"}, nil
	}

	ids := make([]uint, 0, len(in.Items))
	for _, item := range in.Items {
		ids = append(ids, item.ProductID)
	}

	catalogue, err := s.products.FindAll(ids)
	if err != nil {
		return models.Order{}, nil, err
	}

	errs := map[string]string{}
	total := 0
	items := make([]models.OrderItem, 0, len(in.Items))
	for i, item := range in.Items {
		if item.Quantity == 0 {
			errs[fmt.Sprintf("items[%d].quantity", i)] = "must be a non-zero integer"
			continue
		}

		product, ok := catalogue[item.ProductID]
		if !ok {
			errs[fmt.Sprintf("items[%d].product_id", i)] = fmt.Sprintf("product %d does not exist", item.ProductID)
			continue
		}

		total += product.Price * item.Quantity
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}
	if len(errs) > 0 {
		return models.Order{}, errs, nil
	}

	order := models.Order{
		UserID:     userID,
		Status:     models.StatusNew,
		TotalPrice: total,
		Items:      items,
	}
	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, nil, err
	}

	metrics.OrdersCreated.Inc()
	return order, nil, nil
}

// List returns one page of orders. ownerID scoping follows the policy: 0
// means unscoped (staff).
func (s *OrderService) List(f filters.OrderFilter, ownerID uint, page, limit int) ([]models.Order, repositories.Pagination, error) {
	return s.orders.List(f, ownerID, page, limit)
}

// Find loads one order with its items.
func (s *OrderService) Find(id uint) (models.Order, error) {
	return s.orders.Find(id)
}

// UpdateStatus moves an order through its lifecycle.
func (s *OrderService) UpdateStatus(order *models.Order, in OrderStatusInput) (map[string]string, error) {
	if !models.ValidOrderStatus(in.Status) {
		return map[string]string{"status": "must be one of NEW, IN_PROGRESS, DONE"}, nil
	}
	return nil, s.orders.UpdateStatus(order, in.Status)
}

// Delete removes an order together with its line items.
func (s *OrderService) Delete(id uint) error {
	return s.orders.Delete(id)
}
