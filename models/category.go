package models

// Category groups products for navigation. The Products collection is a
// read-side back-reference loaded on demand; deleting a category never
// cascades to its products.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

func (c *Category) TableName() string {
	return "categories"
}
