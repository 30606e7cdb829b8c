package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yukikurage/todo-project-api/internal/models"
)

var (
	// ErrCreateUser is returned when creating the user row fails inside the
	// registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateUserAuth is returned when creating the credential row fails
	// inside the registration transaction.
	ErrCreateUserAuth = errors.New("user repository: create user auth failed")
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithAuth creates a user and its credential row atomically.
func (r *GormUserRepository) CreateWithAuth(user *models.User, userAuth *models.UserAuth) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		userAuth.UserID = user.ID

		if err := tx.Create(userAuth).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUserAuth, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByLogin finds a user by login
func (r *GormUserRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("login = ?", login).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAuthByLogin finds the credential row for a login with the user joined in.
func (r *GormUserRepository) FindAuthByLogin(login string) (*models.UserAuth, error) {
	var userAuth models.UserAuth
	err := r.db.
		Joins("JOIN users ON users.id = user_auths.user_id").
		Where("users.login = ? AND users.deleted_at IS NULL", login).
		Preload("User").
		First(&userAuth).Error
	if err != nil {
		return nil, err
	}
	return &userAuth, nil
}
