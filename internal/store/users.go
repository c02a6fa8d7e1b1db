package store

import (
	"context"

	"github.com/monocle-dev/huddle/internal/apperrors"
	"github.com/monocle-dev/huddle/internal/models"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (r *Users) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return apperrors.Duplicate(apperrors.MsgDuplicateName)
		}
		return wrap(err)
	}
	return nil
}

func (r *Users) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("display_name = ?", name).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(apperrors.MsgUserNotFound, nil)
		}
		return nil, wrap(err)
	}
	return &user, nil
}

func (r *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound(apperrors.MsgUserNotFound, nil)
		}
		return nil, wrap(err)
	}
	return &user, nil
}
