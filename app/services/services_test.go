package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shopapi/app/models"
)

var dbSeq atomic.Int32

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.OrderItem{},
		&models.Collection{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int) models.Product {
	t.Helper()

	p := models.Product{Name: name, Description: "test product", Price: price}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product %q: %v", name, err)
	}
	return p
}

func seedUser(t *testing.T, db *gorm.DB, email string, staff bool) models.User {
	t.Helper()

	u := models.User{Email: email, Name: "Test User", Password: "x", IsStaff: staff}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %q: %v", email, err)
	}
	return u
}
