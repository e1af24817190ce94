package repository

import (
	"errors"

	"gorm.io/gorm"

	"fritzoria/internal/model"
)

// UserStore abstracts account lookup and creation so the auth handlers do not
// depend on the database directly.
type UserStore interface {
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
}

// UserRepository implements UserStore on Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create persists a new user record.
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}
