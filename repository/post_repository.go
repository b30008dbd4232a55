package repository

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"gorm.io/gorm"
)

// PostFilter narrows a post listing, nil fields are ignored. All set fields
// must match.
type PostFilter struct {
	GroupID  *uint
	AuthorID *uint
	// FollowerID keeps posts whose author is followed by this user.
	FollowerID *uint
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// Get returns the post with Author and Group loaded.
	Get(ctx context.Context, id uint) (*model.Post, error)
	// Update persists text, group and image of the post.
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post, its comments go with it.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, filter PostFilter) (int64, error)
	// List returns a window of matching posts, newest first, with Author and
	// Group loaded.
	List(ctx context.Context, filter PostFilter, offset int, limit int) ([]model.Post, error)
}

type gormPostRepository struct {
	db *gorm.DB
}

func (r *gormPostRepository) filtered(ctx context.Context, filter PostFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Post{})
	if filter.GroupID != nil {
		q = q.Where("group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.FollowerID != nil {
		followed := r.db.Model(&model.Follow{}).Select("author_id").Where("user_id = ?", *filter.FollowerID)
		q = q.Where("author_id IN (?)", followed)
	}
	return q
}

func (r *gormPostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Omit("Author", "Group").Create(post).Error; err != nil {
		return wrapErr(err, "cannot create post")
	}
	return nil
}

func (r *gormPostRepository) Get(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, wrapErr(err, "cannot get post %d", id)
	}
	return &post, nil
}

func (r *gormPostRepository) Update(ctx context.Context, post *model.Post) error {
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	})
	if res.Error != nil {
		return wrapErr(res.Error, "cannot update post %d", post.ID)
	}
	if res.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "cannot update post %d", post.ID)
	}
	return nil
}

func (r *gormPostRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Post{}, id)
	if res.Error != nil {
		return wrapErr(res.Error, "cannot delete post %d", id)
	}
	if res.RowsAffected == 0 {
		return wrapErr(gorm.ErrRecordNotFound, "cannot delete post %d", id)
	}
	return nil
}

func (r *gormPostRepository) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, wrapErr(err, "cannot count posts")
	}
	return count, nil
}

func (r *gormPostRepository) List(ctx context.Context, filter PostFilter, offset int, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.filtered(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("created_at desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, wrapErr(err, "cannot list posts")
	}
	return posts, nil
}
