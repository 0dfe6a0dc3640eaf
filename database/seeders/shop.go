package seeders

import (
	"gorm.io/gorm"

	"shopapi/app/models"
	"shopapi/pkg/auth"
)

func init() {
	Register("staff_user", SeedStaffUser)
	Register("catalog", SeedCatalog)
}

// SeedStaffUser creates the initial staff account. Safe to re-run.
func SeedStaffUser(db *gorm.DB) error {
	hash, err := auth.HashPassword("changeme-admin")
	if err != nil {
		return err
	}

	user := models.User{
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: hash,
		IsStaff:  true,
	}
	return db.Where(models.User{Email: user.Email}).FirstOrCreate(&user).Error
}

// SeedCatalog inserts a handful of demo products and one collection.
func SeedCatalog(db *gorm.DB) error {
	products := []models.Product{
		{Name: "Espresso Beans 1kg", Description: "Dark roast arabica blend", Price: 1450},
		{Name: "Pour-Over Kettle", Description: "Gooseneck, 1l, stainless", Price: 3900},
		{Name: "Ceramic Mug", Description: "350ml, matte white", Price: 900},
	}

	ids := make([]uint, 0, len(products))
	for i := range products {
		if err := db.Where(models.Product{Name: products[i].Name}).FirstOrCreate(&products[i]).Error; err != nil {
			return err
		}
		ids = append(ids, products[i].ID)
	}

	collection := models.Collection{
		Title:    "Starter Kit",
		Text:     "Everything you need for a first brew at home.",
		Products: ids,
	}
	return db.Where(models.Collection{Title: collection.Title}).FirstOrCreate(&collection).Error
}
