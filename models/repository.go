package models

import (
	"errors"

	"gorm.io/gorm"
)

// Repository provides uniform CRUD over a single entity type. The
// entity-specific repositories embed it and add their own queries; none
// of them re-implements the generic operations.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetAll returns every row without filtering or pagination. Callers
// apply the query layer downstream.
func (r *Repository[T]) GetAll() ([]T, error) {
	var entities []T
	if err := r.db.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID returns ErrNotFound when no row matches; it never treats a
// missing row as a storage fault.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// Add inserts the entity; the generated primary key is written back
// into the value.
func (r *Repository[T]) Add(entity *T) error {
	return r.db.Create(entity).Error
}

// Update replaces all fields by primary key. No existence check is
// performed beforehand; updating a missing key is left to store
// semantics.
func (r *Repository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete removes the row by primary key. Deleting an already-removed
// entity is a no-op.
func (r *Repository[T]) Delete(entity *T) error {
	return r.db.Delete(entity).Error
}
