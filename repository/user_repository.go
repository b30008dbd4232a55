package repository

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// Delete removes the user, posts, comments and follow edges go with it.
	Delete(ctx context.Context, id uint) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func (r *gormUserRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return wrapErr(err, "cannot create user %s", user.Username)
	}
	return nil
}

func (r *gormUserRepository) Get(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrapErr(err, "cannot get user %d", id)
	}
	return &user, nil
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrapErr(err, "cannot get user %s", username)
	}
	return &user, nil
}

func (r *gormUserRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return wrapErr(res.Error, "cannot delete user %d", id)
	}
	if res.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "cannot delete user %d", id)
	}
	return nil
}
