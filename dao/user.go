package dao

import (
	"gorm.io/gorm"

	"github.com/cvntrieu/Group-3/models"
)

// UserDAO handles user-related database operations
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser creates a new user; roles are assigned separately via AddRole
func (d *UserDAO) CreateUser(username string) (*models.User, error) {
	user := &models.User{Username: username}
	if err := d.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by primary key. A missing user is returned
// as (nil, nil).
func (d *UserDAO) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username. A missing user is
// returned as (nil, nil).
func (d *UserDAO) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// AddRole assigns a role to an existing user
func (d *UserDAO) AddRole(userID uint64, role string) error {
	return d.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}
