// Package repositories holds the database access layer. Every repository is
// constructed over an injected *gorm.DB; nothing here touches globals.
package repositories

import "gorm.io/gorm"

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// paginate counts the filtered set, then loads one page into dest.
func paginate(db *gorm.DB, page, limit int, dest interface{}) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	if err := db.Offset((page - 1) * limit).Limit(limit).Find(dest).Error; err != nil {
		return Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}, nil
}
