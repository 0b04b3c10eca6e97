package store

import (
	"errors"
	"fmt"

	"github.com/diewo77/go-relief/internal/models"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// CreateUser inserts u. The password must already be hashed.
func (c *Conn) CreateUser(u *models.User) error {
	if err := c.tx.Create(u).Error; err != nil {
		if isDuplicate(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// FindUserByUsername returns the account with the exact username.
func (c *Conn) FindUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := c.tx.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
