// Package feed answers every read-only listing: the home feed, group feeds,
// profiles, the follow feed and the post detail page.
package feed

import (
	"context"

	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
)

// Result is one page of a feed.
type Result struct {
	Page  Page
	Posts []model.Post
}

type GroupResult struct {
	Group *model.Group
	Result
}

type ProfileResult struct {
	Author *model.User
	// Following is true when the viewer already follows Author.
	Following bool
	// PostCount is the number of posts Author ever published.
	PostCount int64
	Result
}

type PostDetail struct {
	Post            *model.Post
	Comments        []model.Comment
	AuthorPostCount int64
}

// FollowChecker answers whether user follows author, nil users follow no one.
type FollowChecker interface {
	IsFollowing(ctx context.Context, user *model.User, author *model.User) (bool, error)
}

type Query struct {
	repos   *repository.Repositories
	follows FollowChecker
	perPage int
}

func NewQuery(repos *repository.Repositories, follows FollowChecker, perPage int) *Query {
	return &Query{repos: repos, follows: follows, perPage: perPage}
}

func (q *Query) page(ctx context.Context, filter repository.PostFilter, rawPage string) (*Result, error) {
	count, err := q.repos.Posts.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := Paginate(rawPage, count, q.perPage)
	posts, err := q.repos.Posts.List(ctx, filter, page.Offset(), page.Limit())
	if err != nil {
		return nil, err
	}
	return &Result{Page: page, Posts: posts}, nil
}

// Index lists every post.
func (q *Query) Index(ctx context.Context, rawPage string) (*Result, error) {
	return q.page(ctx, repository.PostFilter{}, rawPage)
}

// Group lists posts of the group addressed by slug.
func (q *Query) Group(ctx context.Context, slug string, rawPage string) (*GroupResult, error) {
	group, err := q.repos.Groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	res, err := q.page(ctx, repository.PostFilter{GroupID: &group.ID}, rawPage)
	if err != nil {
		return nil, err
	}
	return &GroupResult{Group: group, Result: *res}, nil
}

// Profile lists posts written by username. viewer is nil for anonymous
// requests.
func (q *Query) Profile(ctx context.Context, viewer *model.User, username string, rawPage string) (*ProfileResult, error) {
	author, err := q.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	res, err := q.page(ctx, repository.PostFilter{AuthorID: &author.ID}, rawPage)
	if err != nil {
		return nil, err
	}

	following, err := q.follows.IsFollowing(ctx, viewer, author)
	if err != nil {
		return nil, err
	}

	return &ProfileResult{
		Author:    author,
		Following: following,
		PostCount: res.Page.Count,
		Result:    *res,
	}, nil
}

// Follow lists posts of every author viewer follows.
func (q *Query) Follow(ctx context.Context, viewer *model.User, rawPage string) (*Result, error) {
	return q.page(ctx, repository.PostFilter{FollowerID: &viewer.ID}, rawPage)
}

func (q *Query) PostDetail(ctx context.Context, postID uint) (*PostDetail, error) {
	post, err := q.repos.Posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	comments, err := q.repos.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	count, err := q.repos.Posts.Count(ctx, repository.PostFilter{AuthorID: &post.AuthorID})
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, Comments: comments, AuthorPostCount: count}, nil
}
