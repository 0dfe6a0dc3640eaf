package models

// Order status lifecycle. New orders always start at StatusNew; staff move
// them forward.
const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// OrderStatuses lists every valid status value.
var OrderStatuses = []string{StatusNew, StatusInProgress, StatusDone}

// ValidOrderStatus reports whether s is a known status.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a user's purchase. TotalPrice is computed at creation from the
// line items and never accepted from the client.
type Order struct {
	Model
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	Status     string      `gorm:"size:11;not null;default:NEW" json:"status"`
	TotalPrice int         `gorm:"not null" json:"total_price"`
	Items      []OrderItem `json:"items"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// OrderItem is one product+quantity line inside an order. UnitPrice is the
// product price captured when the order was placed, so later catalogue price
// edits never change an existing order's total.
type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	OrderID   uint `gorm:"not null;index" json:"-"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null" json:"quantity"`
	UnitPrice int  `gorm:"not null" json:"unit_price"`
}
