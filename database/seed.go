package database

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/alirezadev/shop-api/models"
)

// Seed inserts a small demo catalog when the categories table is empty.
// Running it against a populated database is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Laptops", Slug: "laptop", Description: "All kinds of laptops", IsActive: true},
		{Name: "Mobiles", Slug: "mobile", Description: "Smartphones", IsActive: true},
		{Name: "Tablets", Slug: "tablet", Description: "Tablets", IsActive: true},
		{Name: "Accessories", Slug: "accessories", Description: "Accessories", IsActive: true},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	discounted := decimal.NewFromInt(2300)
	tabDiscount := decimal.NewFromInt(1650)
	products := []models.Product{
		{
			Name:             "Asus VivoBook 15",
			SKU:              "LAP-001",
			Description:      "Asus laptop with a Core i5 processor",
			ShortDescription: "Good for work and study",
			Price:            decimal.NewFromInt(2500),
			DiscountPrice:    &discounted,
			Stock:            10,
			CategoryID:       categories[0].ID,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:             "Samsung Galaxy A54",
			SKU:              "MOB-001",
			Description:      "Samsung phone with an AMOLED display",
			ShortDescription: "50 MP camera",
			Price:            decimal.NewFromInt(1500),
			Stock:            25,
			CategoryID:       categories[1].ID,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:             "Samsung Galaxy Tab S9",
			SKU:              "TAB-001",
			Description:      "Powerful Samsung tablet",
			ShortDescription: "11 inch display",
			Price:            decimal.NewFromInt(1800),
			DiscountPrice:    &tabDiscount,
			Stock:            8,
			CategoryID:       categories[2].ID,
			IsActive:         true,
		},
	}
	return db.Create(&products).Error
}
