package utils

import (
	"testing"
	"time"

	"github.com/Luismorlan/yatube/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// create user with username, do sanity checks and returns it
func TestCreateUserAndValidate(t *testing.T, db *gorm.DB, username string) model.User {
	t.Helper()
	user := model.User{Username: username, Email: username + "@yatube.test"}
	require.Nil(t, db.Create(&user).Error)
	require.NotZero(t, user.ID)
	require.Truef(t, time.Now().UnixNano() >= user.CreatedAt.UnixNano(), "time created wrong")
	return user
}

// create group with title and slug, do sanity checks and returns it
func TestCreateGroupAndValidate(t *testing.T, db *gorm.DB, title string, slug string) model.Group {
	t.Helper()
	group := model.Group{Title: title, Slug: slug, Description: "description of " + title}
	require.Nil(t, db.Create(&group).Error)
	require.NotZero(t, group.ID)
	return group
}

// create post for author, group is optional, do sanity checks and returns it
func TestCreatePostAndValidate(t *testing.T, db *gorm.DB, author model.User, group *model.Group, text string) model.Post {
	t.Helper()
	post := model.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.Nil(t, db.Omit("Author", "Group").Create(&post).Error)
	require.NotZero(t, post.ID)
	require.Equal(t, text, post.Text)
	return post
}

// create comment on post, do sanity checks and returns it
func TestCreateCommentAndValidate(t *testing.T, db *gorm.DB, author model.User, post model.Post, text string) model.Comment {
	t.Helper()
	comment := model.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.Nil(t, db.Omit("Author", "Post").Create(&comment).Error)
	require.NotZero(t, comment.ID)
	return comment
}

// create follow edge user -> author, do sanity checks and returns it
func TestCreateFollowAndValidate(t *testing.T, db *gorm.DB, user model.User, author model.User) model.Follow {
	t.Helper()
	follow := model.Follow{UserID: user.ID, AuthorID: author.ID}
	require.Nil(t, db.Omit("User", "Author").Create(&follow).Error)
	require.NotZero(t, follow.ID)
	return follow
}

// count rows of the given model
func TestCountRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var count int64
	require.Nil(t, db.Model(m).Count(&count).Error)
	return count
}
