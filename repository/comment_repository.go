package repository

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	// ListByPost returns comments of a post, oldest first, with Author loaded.
	ListByPost(ctx context.Context, postID uint) ([]model.Comment, error)
}

type gormCommentRepository struct {
	db *gorm.DB
}

func (r *gormCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Omit("Author", "Post").Create(comment).Error; err != nil {
		return wrapErr(err, "cannot create comment on post %d", comment.PostID)
	}
	return nil
}

func (r *gormCommentRepository) ListByPost(ctx context.Context, postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at").
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, wrapErr(err, "cannot list comments of post %d", postID)
	}
	return comments, nil
}
