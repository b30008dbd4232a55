package repository

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	Get(ctx context.Context, id uint) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	// List returns all groups ordered by title, used as post form choices.
	List(ctx context.Context) ([]model.Group, error)
	// DeleteBySlug removes the group, its posts survive without a group.
	DeleteBySlug(ctx context.Context, slug string) error
}

type gormGroupRepository struct {
	db *gorm.DB
}

func (r *gormGroupRepository) Create(ctx context.Context, group *model.Group) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return wrapErr(err, "cannot create group %s", group.Slug)
	}
	return nil
}

func (r *gormGroupRepository) Get(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, wrapErr(err, "cannot get group %d", id)
	}
	return &group, nil
}

func (r *gormGroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, wrapErr(err, "cannot get group %s", slug)
	}
	return &group, nil
}

func (r *gormGroupRepository) List(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.WithContext(ctx).Order("title").Order("id").Find(&groups).Error; err != nil {
		return nil, wrapErr(err, "cannot list groups")
	}
	return groups, nil
}

func (r *gormGroupRepository) DeleteBySlug(ctx context.Context, slug string) error {
	res := r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&model.Group{})
	if res.Error != nil {
		return wrapErr(res.Error, "cannot delete group %s", slug)
	}
	if res.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "cannot delete group %s", slug)
	}
	return nil
}
