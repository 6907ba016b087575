package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. It includes a unique SKU, prices, stock and
// a required reference to its category.
type Product struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	Name             string           `gorm:"not null" json:"name"`
	ShortDescription string           `json:"shortDescription,omitempty"`
	Description      string           `json:"description,omitempty"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	DiscountPrice    *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discountPrice,omitempty"`
	Stock            int              `json:"stock"`
	SKU              string           `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	CategoryID       uint             `gorm:"not null" json:"categoryId"`
	Category         Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ThumbnailURL     string           `json:"thumbnailUrl,omitempty"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"createdAt"`
	IsActive         bool             `json:"isActive"`
	IsFeatured       bool             `json:"isFeatured"`
}

func (p *Product) TableName() string {
	return "products"
}
