package repository

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	// GetOrCreate returns the (user, author) edge, creating it if missing.
	// created is false when the edge already existed.
	GetOrCreate(ctx context.Context, userID uint, authorID uint) (follow *model.Follow, created bool, err error)
	// Delete removes the (user, author) edge and returns how many rows went away.
	Delete(ctx context.Context, userID uint, authorID uint) (int64, error)
	Exists(ctx context.Context, userID uint, authorID uint) (bool, error)
}

type gormFollowRepository struct {
	db *gorm.DB
}

func (r *gormFollowRepository) GetOrCreate(ctx context.Context, userID uint, authorID uint) (*model.Follow, bool, error) {
	follow := model.Follow{UserID: userID, AuthorID: authorID}
	// The unique pair index turns a concurrent duplicate into a no-op insert.
	res := r.db.WithContext(ctx).
		Omit("User", "Author").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow)
	if res.Error != nil {
		return nil, false, wrapErr(res.Error, "cannot follow %d -> %d", userID, authorID)
	}
	if res.RowsAffected > 0 {
		return &follow, true, nil
	}

	var existing model.Follow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&existing).Error
	if err != nil {
		return nil, false, wrapErr(err, "cannot get follow %d -> %d", userID, authorID)
	}
	return &existing, false, nil
}

func (r *gormFollowRepository) Delete(ctx context.Context, userID uint, authorID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return 0, wrapErr(res.Error, "cannot unfollow %d -> %d", userID, authorID)
	}
	return res.RowsAffected, nil
}

func (r *gormFollowRepository) Exists(ctx context.Context, userID uint, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr(err, "cannot check follow %d -> %d", userID, authorID)
	}
	return count > 0, nil
}
