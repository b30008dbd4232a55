package repository

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/utils"
	"github.com/Luismorlan/yatube/utils/dotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

func TestPostList_NewestFirst(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	author := utils.TestCreateUserAndValidate(t, db, "author")
	for i := 0; i < 3; i++ {
		utils.TestCreatePostAndValidate(t, db, author, nil, fmt.Sprintf("post %d", i))
	}

	posts, err := repos.Posts.List(ctx, PostFilter{}, 0, 10)
	require.Nil(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "post 2", posts[0].Text)
	assert.Equal(t, "post 0", posts[2].Text)
	assert.Equal(t, "author", posts[0].Author.Username)
	assert.Nil(t, posts[0].Group)
}

func TestPostList_Filters(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	alice := utils.TestCreateUserAndValidate(t, db, "alice")
	bob := utils.TestCreateUserAndValidate(t, db, "bob")
	carol := utils.TestCreateUserAndValidate(t, db, "carol")
	group := utils.TestCreateGroupAndValidate(t, db, "Cats", "cats")

	utils.TestCreatePostAndValidate(t, db, alice, &group, "alice in cats")
	utils.TestCreatePostAndValidate(t, db, alice, nil, "alice alone")
	utils.TestCreatePostAndValidate(t, db, bob, &group, "bob in cats")
	utils.TestCreatePostAndValidate(t, db, carol, nil, "carol alone")
	utils.TestCreateFollowAndValidate(t, db, carol, alice)

	t.Run("group", func(t *testing.T) {
		count, err := repos.Posts.Count(ctx, PostFilter{GroupID: &group.ID})
		require.Nil(t, err)
		assert.Equal(t, int64(2), count)
		posts, err := repos.Posts.List(ctx, PostFilter{GroupID: &group.ID}, 0, 10)
		require.Nil(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Cats", posts[0].Group.Title)
	})

	t.Run("author", func(t *testing.T) {
		count, err := repos.Posts.Count(ctx, PostFilter{AuthorID: &alice.ID})
		require.Nil(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("follower", func(t *testing.T) {
		posts, err := repos.Posts.List(ctx, PostFilter{FollowerID: &carol.ID}, 0, 10)
		require.Nil(t, err)
		require.Len(t, posts, 2)
		for _, p := range posts {
			assert.Equal(t, alice.ID, p.AuthorID)
		}

		count, err := repos.Posts.Count(ctx, PostFilter{FollowerID: &bob.ID})
		require.Nil(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("offset and limit", func(t *testing.T) {
		posts, err := repos.Posts.List(ctx, PostFilter{}, 1, 2)
		require.Nil(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "bob in cats", posts[0].Text)
	})
}

func TestPostGetUpdateDelete(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	author := utils.TestCreateUserAndValidate(t, db, "author")
	group := utils.TestCreateGroupAndValidate(t, db, "Dogs", "dogs")
	post := utils.TestCreatePostAndValidate(t, db, author, &group, "before")

	post.Text = "after"
	post.GroupID = nil
	post.Image = "posts/x.gif"
	require.Nil(t, repos.Posts.Update(ctx, &post))

	got, err := repos.Posts.Get(ctx, post.ID)
	require.Nil(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Nil(t, got.GroupID)
	assert.Equal(t, "posts/x.gif", got.Image)
	assert.Equal(t, post.CreatedAt.Unix(), got.CreatedAt.Unix())

	require.Nil(t, repos.Posts.Delete(ctx, post.ID))
	_, err = repos.Posts.Get(ctx, post.ID)
	assert.True(t, IsNotFound(err))
	assert.True(t, IsNotFound(repos.Posts.Delete(ctx, post.ID)))
	assert.True(t, IsNotFound(repos.Posts.Update(ctx, &post)))
}

func TestGroupDeletion_NullifiesPosts(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	author := utils.TestCreateUserAndValidate(t, db, "author")
	group := utils.TestCreateGroupAndValidate(t, db, "Birds", "birds")
	post := utils.TestCreatePostAndValidate(t, db, author, &group, "tweet")

	require.Nil(t, repos.Groups.DeleteBySlug(ctx, "birds"))

	got, err := repos.Posts.Get(ctx, post.ID)
	require.Nil(t, err)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)
	assert.True(t, IsNotFound(repos.Groups.DeleteBySlug(ctx, "birds")))
}

func TestUserDeletion_CascadesPostsCommentsFollows(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	doomed := utils.TestCreateUserAndValidate(t, db, "doomed")
	other := utils.TestCreateUserAndValidate(t, db, "other")
	doomedPost := utils.TestCreatePostAndValidate(t, db, doomed, nil, "mine")
	otherPost := utils.TestCreatePostAndValidate(t, db, other, nil, "theirs")
	utils.TestCreateCommentAndValidate(t, db, other, doomedPost, "comment on doomed post")
	utils.TestCreateCommentAndValidate(t, db, doomed, otherPost, "comment by doomed")
	utils.TestCreateFollowAndValidate(t, db, doomed, other)
	utils.TestCreateFollowAndValidate(t, db, other, doomed)

	require.Nil(t, repos.Users.Delete(ctx, doomed.ID))

	assert.Equal(t, int64(1), utils.TestCountRows(t, db, &model.Post{}))
	assert.Equal(t, int64(0), utils.TestCountRows(t, db, &model.Comment{}))
	assert.Equal(t, int64(0), utils.TestCountRows(t, db, &model.Follow{}))
	_, err := repos.Users.GetByUsername(ctx, "doomed")
	assert.True(t, IsNotFound(err))
}

func TestPostDeletion_CascadesComments(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	author := utils.TestCreateUserAndValidate(t, db, "author")
	post := utils.TestCreatePostAndValidate(t, db, author, nil, "text")
	utils.TestCreateCommentAndValidate(t, db, author, post, "first")
	utils.TestCreateCommentAndValidate(t, db, author, post, "second")

	comments, err := repos.Comments.ListByPost(ctx, post.ID)
	require.Nil(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "author", comments[0].Author.Username)

	require.Nil(t, repos.Posts.Delete(ctx, post.ID))
	assert.Equal(t, int64(0), utils.TestCountRows(t, db, &model.Comment{}))
}

func TestFollowGetOrCreate_Idempotent(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	user := utils.TestCreateUserAndValidate(t, db, "reader")
	author := utils.TestCreateUserAndValidate(t, db, "writer")

	first, created, err := repos.Follows.GetOrCreate(ctx, user.ID, author.ID)
	require.Nil(t, err)
	assert.True(t, created)

	second, created, err := repos.Follows.GetOrCreate(ctx, user.ID, author.ID)
	require.Nil(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), utils.TestCountRows(t, db, &model.Follow{}))

	exists, err := repos.Follows.Exists(ctx, user.ID, author.ID)
	require.Nil(t, err)
	assert.True(t, exists)
	exists, err = repos.Follows.Exists(ctx, author.ID, user.ID)
	require.Nil(t, err)
	assert.False(t, exists)

	removed, err := repos.Follows.Delete(ctx, user.ID, author.ID)
	require.Nil(t, err)
	assert.Equal(t, int64(1), removed)
	removed, err = repos.Follows.Delete(ctx, user.ID, author.ID)
	require.Nil(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestFollowGetOrCreate_RejectsSelfFollow(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	user := utils.TestCreateUserAndValidate(t, db, "narcissus")

	follow, created, err := repos.Follows.GetOrCreate(ctx, user.ID, user.ID)
	require.NotNil(t, err)
	assert.False(t, IsNotFound(err))
	assert.False(t, created)
	assert.Nil(t, follow)
	assert.Equal(t, int64(0), utils.TestCountRows(t, db, &model.Follow{}))
}

func TestGroupList_OrderedByTitle(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	utils.TestCreateGroupAndValidate(t, db, "Zebras", "zebras")
	utils.TestCreateGroupAndValidate(t, db, "Ants", "ants")

	groups, err := repos.Groups.List(ctx)
	require.Nil(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Ants", groups[0].Title)

	g, err := repos.Groups.GetBySlug(ctx, "zebras")
	require.Nil(t, err)
	assert.Equal(t, "Zebras", g.String())
	_, err = repos.Groups.GetBySlug(ctx, "missing")
	assert.True(t, IsNotFound(err))
}

func TestUserRepository(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	repos := New(db)
	ctx := context.Background()

	user := model.User{Username: "newbie", PasswordHash: "hash"}
	require.Nil(t, repos.Users.Create(ctx, &user))
	got, err := repos.Users.Get(ctx, user.ID)
	require.Nil(t, err)
	assert.Equal(t, "newbie", got.Username)

	assert.NotNil(t, repos.Users.Create(ctx, &model.User{Username: "newbie"}))
	_, err = repos.Users.Get(ctx, 9999)
	assert.True(t, IsNotFound(err))
}
