package service

import (
	"context"

	"github.com/Luismorlan/yatube/activity"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/sirupsen/logrus"
)

type FollowService struct {
	repos     *repository.Repositories
	publisher activity.Publisher
}

func NewFollowService(repos *repository.Repositories, publisher activity.Publisher) *FollowService {
	return &FollowService{repos: repos, publisher: publisher}
}

// Follow subscribes actor to username. Following yourself or someone you
// already follow changes nothing. The resolved author is returned.
func (s *FollowService) Follow(ctx context.Context, actor *model.User, username string) (*model.User, error) {
	author, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author.ID == actor.ID {
		return author, nil
	}

	_, created, err := s.repos.Follows.GetOrCreate(ctx, actor.ID, author.ID)
	if err != nil {
		return nil, err
	}
	if created {
		Logger.Log.WithFields(logrus.Fields{"user": actor.Username, "author": author.Username}).Info("follow created")
		s.publisher.Publish(activity.TOPIC_FOLLOW_CREATED, activity.Event{ActorID: actor.ID, AuthorID: author.ID})
	}
	return author, nil
}

// Unfollow removes the actor -> username edge if there is one.
func (s *FollowService) Unfollow(ctx context.Context, actor *model.User, username string) (*model.User, error) {
	author, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	removed, err := s.repos.Follows.Delete(ctx, actor.ID, author.ID)
	if err != nil {
		return nil, err
	}
	if removed > 0 {
		Logger.Log.WithFields(logrus.Fields{"user": actor.Username, "author": author.Username}).Info("follow deleted")
		s.publisher.Publish(activity.TOPIC_FOLLOW_DELETED, activity.Event{ActorID: actor.ID, AuthorID: author.ID})
	}
	return author, nil
}

func (s *FollowService) IsFollowing(ctx context.Context, user *model.User, author *model.User) (bool, error) {
	if user == nil || author == nil || user.ID == author.ID {
		return false, nil
	}
	return s.repos.Follows.Exists(ctx, user.ID, author.ID)
}
