package models

import (
	"errors"

	"gorm.io/gorm"
)

// ProductsRepository adds the eager-loading read paths on top of the
// generic CRUD. The category is always preloaded explicitly so the
// fetch cost stays visible at the call site.
type ProductsRepository struct {
	*Repository[Product]
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		Repository: NewRepository[Product](db),
		db:         db,
	}
}

// GetAllWithCategory returns all products, each with its category
// attached.
func (r *ProductsRepository) GetAllWithCategory() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByIDWithCategory returns one product with its category, or
// ErrNotFound.
func (r *ProductsRepository) GetByIDWithCategory(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetByCategory returns the products belonging to one category, each
// with the category attached.
func (r *ProductsRepository) GetByCategory(categoryID uint) ([]Product, error) {
	var products []Product
	if err := r.db.
		Where("category_id = ?", categoryID).
		Preload("Category").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
