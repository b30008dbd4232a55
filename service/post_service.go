package service

import (
	"context"

	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/file_store"
	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/sirupsen/logrus"
)

type PostService struct {
	repos     *repository.Repositories
	images    file_store.ImageStore
	publisher activity.Publisher
}

func NewPostService(repos *repository.Repositories, images file_store.ImageStore, publisher activity.Publisher) *PostService {
	return &PostService{repos: repos, images: images, publisher: publisher}
}

func (s *PostService) storeImage(ctx context.Context, img *forms.ImageUpload) (string, error) {
	key := img.NewKey()
	if err := s.images.Store(ctx, key, img.ContentType, img.Data); err != nil {
		return "", err
	}
	return key, nil
}

// Create publishes a new post written by actor.
func (s *PostService) Create(ctx context.Context, actor *model.User, form *forms.PostForm) (*model.Post, error) {
	if err := form.Clean(); err != nil {
		return nil, err
	}
	groupID, err := resolveGroup(ctx, s.repos, form.GroupID())
	if err != nil {
		return nil, err
	}

	post := &model.Post{Text: form.Text, GroupID: groupID, AuthorID: actor.ID}
	if form.Image != nil {
		if post.Image, err = s.storeImage(ctx, form.Image); err != nil {
			return nil, err
		}
	}
	if err := s.repos.Posts.Create(ctx, post); err != nil {
		if post.Image != "" {
			s.images.Delete(ctx, post.Image)
		}
		return nil, err
	}

	Logger.Log.WithFields(logrus.Fields{"post_id": post.ID, "author": actor.Username}).Info("post created")
	s.publisher.Publish(activity.TOPIC_POST_CREATED, activity.Event{ActorID: actor.ID, PostID: post.ID, AuthorID: actor.ID})
	return post, nil
}

// Edit applies form to the post only when actor is its author. It always
// returns the post as stored afterwards; applied is false when nothing was
// written, either because actor is not the author or because form is
// invalid (err is then FieldErrors).
func (s *PostService) Edit(ctx context.Context, actor *model.User, postID uint, form *forms.PostForm) (post *model.Post, applied bool, err error) {
	post, err = s.repos.Posts.Get(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	if !IsAuthor(actor, post) {
		return post, false, nil
	}
	if err := form.Clean(); err != nil {
		return post, false, err
	}
	groupID, err := resolveGroup(ctx, s.repos, form.GroupID())
	if err != nil {
		return post, false, err
	}

	updated := *post
	updated.Text = form.Text
	updated.GroupID = groupID
	staleImage := ""
	switch {
	case form.Image != nil:
		if updated.Image, err = s.storeImage(ctx, form.Image); err != nil {
			return post, false, err
		}
		staleImage = post.Image
	case form.ClearImage:
		updated.Image = ""
		staleImage = post.Image
	}

	if err := s.repos.Posts.Update(ctx, &updated); err != nil {
		if updated.Image != post.Image && updated.Image != "" {
			s.images.Delete(ctx, updated.Image)
		}
		return post, false, err
	}

	Logger.Log.WithFields(logrus.Fields{"post_id": post.ID, "author": actor.Username}).Info("post updated")
	s.publisher.Publish(activity.TOPIC_POST_UPDATED, activity.Event{
		ActorID:       actor.ID,
		PostID:        post.ID,
		AuthorID:      post.AuthorID,
		StaleImageKey: staleImage,
	})

	post, err = s.repos.Posts.Get(ctx, postID)
	if err != nil {
		return nil, true, err
	}
	return post, true, nil
}

// Delete removes the post when actor is its author, otherwise it is a no-op
// and deleted is false. Comments go with the post.
func (s *PostService) Delete(ctx context.Context, actor *model.User, postID uint) (deleted bool, err error) {
	post, err := s.repos.Posts.Get(ctx, postID)
	if err != nil {
		return false, err
	}
	if !IsAuthor(actor, post) {
		return false, nil
	}
	if err := s.repos.Posts.Delete(ctx, postID); err != nil {
		return false, err
	}

	Logger.Log.WithFields(logrus.Fields{"post_id": post.ID, "author": actor.Username}).Info("post deleted")
	s.publisher.Publish(activity.TOPIC_POST_DELETED, activity.Event{
		ActorID:       actor.ID,
		PostID:        post.ID,
		AuthorID:      post.AuthorID,
		StaleImageKey: post.Image,
	})
	return true, nil
}

// IsAuthor is the only edit and delete permission check.
func IsAuthor(actor *model.User, post *model.Post) bool {
	return actor != nil && post != nil && actor.ID == post.AuthorID
}
