package service

import (
	"context"

	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/sirupsen/logrus"
)

type CommentService struct {
	repos     *repository.Repositories
	publisher activity.Publisher
}

func NewCommentService(repos *repository.Repositories, publisher activity.Publisher) *CommentService {
	return &CommentService{repos: repos, publisher: publisher}
}

// Add comments on post postID as actor. The post is looked up first so an
// unknown post is reported before an invalid form.
func (s *CommentService) Add(ctx context.Context, actor *model.User, postID uint, form *forms.CommentForm) (*model.Comment, error) {
	post, err := s.repos.Posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := form.Clean(); err != nil {
		return nil, err
	}

	comment := &model.Comment{Text: form.Text, PostID: post.ID, AuthorID: actor.ID}
	if err := s.repos.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	Logger.Log.WithFields(logrus.Fields{"post_id": post.ID, "comment_id": comment.ID, "author": actor.Username}).Info("comment added")
	s.publisher.Publish(activity.TOPIC_COMMENT_CREATED, activity.Event{
		ActorID:   actor.ID,
		PostID:    post.ID,
		CommentID: comment.ID,
		AuthorID:  post.AuthorID,
	})
	return comment, nil
}
