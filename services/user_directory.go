package services

import (
	"context"
	"errors"

	"github.com/wanderlist/api-go/models"
	"gorm.io/gorm"
)

// UserDirectory answers identity lookups for the social services. Account
// lifecycle (registration, credentials) is owned elsewhere; this only reads.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *UserDirectory) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := d.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, NotFoundError("User not found")
	}
	return user, err
}
