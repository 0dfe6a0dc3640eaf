// Package resources shapes models into API responses. Timestamps are
// rendered date-only; internal columns (password hashes, item row ids) never
// leave this layer.
package resources

import "shopapi/app/models"

const dateLayout = "2006-01-02"

type User struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

func NewUser(m models.User) User {
	return User{ID: m.ID, Name: m.Name, Email: m.Email, IsStaff: m.IsStaff}
}

type Product struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func NewProduct(m models.Product) Product {
	return Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt.Format(dateLayout),
		UpdatedAt:   m.UpdatedAt.Format(dateLayout),
	}
}

func NewProducts(ms []models.Product) []Product {
	out := make([]Product, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewProduct(m))
	}
	return out
}

type Review struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewReview(m models.Review) Review {
	return Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Text:      m.Text,
		Rating:    m.Rating,
		CreatedAt: m.CreatedAt.Format(dateLayout),
		UpdatedAt: m.UpdatedAt.Format(dateLayout),
	}
}

func NewReviews(ms []models.Review) []Review {
	out := make([]Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewReview(m))
	}
	return out
}

type OrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
	UnitPrice int  `json:"unit_price"`
}

type Order struct {
	ID         uint        `json:"id"`
	UserID     uint        `json:"user_id"`
	Status     string      `json:"status"`
	TotalPrice int         `json:"total_price"`
	Items      []OrderItem `json:"items"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
}

func NewOrder(m models.Order) Order {
	items := make([]OrderItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return Order{
		ID:         m.ID,
		UserID:     m.UserID,
		Status:     m.Status,
		TotalPrice: m.TotalPrice,
		Items:      items,
		CreatedAt:  m.CreatedAt.Format(dateLayout),
		UpdatedAt:  m.UpdatedAt.Format(dateLayout),
	}
}

func NewOrders(ms []models.Order) []Order {
	out := make([]Order, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewOrder(m))
	}
	return out
}

type Collection struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Products  []uint `json:"products"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewCollection(m models.Collection) Collection {
	products := m.Products
	if products == nil {
		products = []uint{}
	}
	return Collection{
		ID:        m.ID,
		Title:     m.Title,
		Text:      m.Text,
		Products:  products,
		CreatedAt: m.CreatedAt.Format(dateLayout),
		UpdatedAt: m.UpdatedAt.Format(dateLayout),
	}
}

func NewCollections(ms []models.Collection) []Collection {
	out := make([]Collection, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewCollection(m))
	}
	return out
}
