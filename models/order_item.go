package models

import "time"

// OrderItem is a placeholder for the ordering flow; no behavior is
// attached to it yet.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (o *OrderItem) TableName() string {
	return "order_items"
}
