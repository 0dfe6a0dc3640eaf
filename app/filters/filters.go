// Package filters translates list-endpoint query parameters into GORM
// predicates. All parameters of a filter compose conjunctively (AND).
package filters

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ProductFilter narrows the product list.
//
//	price_min, price_max  inclusive bounds on price
//	name, description     case-insensitive substring match
type ProductFilter struct {
	PriceMin    *int
	PriceMax    *int
	Name        string
	Description string
}

// ParseProductFilter reads the filter from query parameters. The returned map
// is non-empty when a parameter is malformed.
func ParseProductFilter(q url.Values) (ProductFilter, map[string]string) {
	errs := map[string]string{}
	f := ProductFilter{
		Name:        q.Get("name"),
		Description: q.Get("description"),
	}
	f.PriceMin = intParam(q, "price_min", errs)
	f.PriceMax = intParam(q, "price_max", errs)
	return f, errs
}

func (f ProductFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.PriceMin != nil {
		db = db.Where("price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		db = db.Where("price <= ?", *f.PriceMax)
	}
	if f.Name != "" {
		db = db.Where("LOWER(name) LIKE ?", contains(f.Name))
	}
	if f.Description != "" {
		db = db.Where("LOWER(description) LIKE ?", contains(f.Description))
	}
	return db
}

// ReviewFilter narrows the review list.
//
//	user, product  exact id match
//	creation       exact creation date (YYYY-MM-DD)
type ReviewFilter struct {
	UserID    *uint
	ProductID *uint
	Creation  *time.Time
}

func ParseReviewFilter(q url.Values) (ReviewFilter, map[string]string) {
	errs := map[string]string{}
	f := ReviewFilter{}
	f.UserID = uintParam(q, "user", errs)
	f.ProductID = uintParam(q, "product", errs)
	f.Creation = dateParam(q, "creation", errs)
	return f, errs
}

func (f ReviewFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	if f.ProductID != nil {
		db = db.Where("product_id = ?", *f.ProductID)
	}
	if f.Creation != nil {
		db = db.Where("created_at >= ? AND created_at < ?", *f.Creation, f.Creation.AddDate(0, 0, 1))
	}
	return db
}

// OrderFilter narrows the order list.
//
//	status                          exact status match
//	price_min, price_max            inclusive bounds on total_price
//	created_after, created_before   inclusive date bounds on creation
//	updated_after, updated_before   inclusive date bounds on last update
//	product                         order contains a line item for that product
type OrderFilter struct {
	Status        string
	PriceMin      *int
	PriceMax      *int
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	ProductID     *uint
}

func ParseOrderFilter(q url.Values) (OrderFilter, map[string]string) {
	errs := map[string]string{}
	f := OrderFilter{Status: q.Get("status")}
	f.PriceMin = intParam(q, "price_min", errs)
	f.PriceMax = intParam(q, "price_max", errs)
	f.CreatedAfter = dateParam(q, "created_after", errs)
	f.CreatedBefore = dateParam(q, "created_before", errs)
	f.UpdatedAfter = dateParam(q, "updated_after", errs)
	f.UpdatedBefore = dateParam(q, "updated_before", errs)
	f.ProductID = uintParam(q, "product", errs)
	return f, errs
}

func (f OrderFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.PriceMin != nil {
		db = db.Where("total_price >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		db = db.Where("total_price <= ?", *f.PriceMax)
	}
	if f.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		// inclusive: anything before the end of that day
		db = db.Where("created_at < ?", f.CreatedBefore.AddDate(0, 0, 1))
	}
	if f.UpdatedAfter != nil {
		db = db.Where("updated_at >= ?", *f.UpdatedAfter)
	}
	if f.UpdatedBefore != nil {
		db = db.Where("updated_at < ?", f.UpdatedBefore.AddDate(0, 0, 1))
	}
	if f.ProductID != nil {
		db = db.Where("id IN (SELECT order_id FROM order_items WHERE product_id = ?)", *f.ProductID)
	}
	return db
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func intParam(q url.Values, key string, errs map[string]string) *int {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[key] = "must be an integer"
		return nil
	}
	return &n
}

func uintParam(q url.Values, key string, errs map[string]string) *uint {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		errs[key] = "must be a positive integer"
		return nil
	}
	u := uint(n)
	return &u
}

func dateParam(q url.Values, key string, errs map[string]string) *time.Time {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		errs[key] = "must be a date in YYYY-MM-DD format"
		return nil
	}
	return &t
}
