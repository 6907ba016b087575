package models

import (
	"errors"

	"gorm.io/gorm"
)

type UsersRepository struct {
	*Repository[User]
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *UsersRepository {
	return &UsersRepository{
		Repository: NewRepository[User](db),
		db:         db,
	}
}

// GetByUsername looks a user up by exact username, or ErrNotFound.
func (r *UsersRepository) GetByUsername(username string) (*User, error) {
	var user User
	if err := r.db.
		Where("username = ?", username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail looks a user up by email, or ErrNotFound.
func (r *UsersRepository) GetByEmail(email string) (*User, error) {
	var user User
	if err := r.db.
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
