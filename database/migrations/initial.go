package migrations

import (
	"gorm.io/gorm"

	"shopapi/app/models"
	"shopapi/pkg/migration"
)

func init() {
	migration.Register("20260801000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260801000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260801000002_create_reviews_table", &CreateReviewsTable{})
	migration.Register("20260801000003_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260801000004_create_collections_table", &CreateCollectionsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0003: reviews --------

type CreateReviewsTable struct{}

func (m *CreateReviewsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Review{})
}

func (m *CreateReviewsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("reviews")
}

// -------- 0004: orders + order_items --------

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.OrderItem{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("order_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}

// -------- 0005: collections --------

type CreateCollectionsTable struct{}

func (m *CreateCollectionsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Collection{})
}

func (m *CreateCollectionsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("collections")
}
