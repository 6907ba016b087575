package models

import (
	"errors"

	"gorm.io/gorm"
)

type CategoriesRepository struct {
	*Repository[Category]
	db *gorm.DB
}

func NewCategoriesRepository(db *gorm.DB) *CategoriesRepository {
	return &CategoriesRepository{
		Repository: NewRepository[Category](db),
		db:         db,
	}
}

// GetActive returns the categories with IsActive set, in store order.
func (r *CategoriesRepository) GetActive() ([]Category, error) {
	var categories []Category
	if err := r.db.
		Where("is_active = ?", true).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetWithProducts returns one category with its product collection
// eagerly loaded, or ErrNotFound.
func (r *CategoriesRepository) GetWithProducts(id uint) (*Category, error) {
	var category Category
	if err := r.db.
		Preload("Products").
		First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug returns the first category matching the slug, or
// ErrNotFound. Slugs are unique at the store level, so "first" is only
// relevant if that constraint is lifted.
func (r *CategoriesRepository) GetBySlug(slug string) (*Category, error) {
	var category Category
	if err := r.db.
		Where("slug = ?", slug).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
