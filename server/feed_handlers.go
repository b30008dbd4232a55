package server

import (
	"net/http"

	"github.com/Luismorlan/yatube/server/middlewares"
	"github.com/gin-gonic/gin"
)

const flashCommentError = "flash_comment_error"

func (s *Server) index(c *gin.Context) {
	res, err := s.feed.Index(c.Request.Context(), c.Query("page"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "posts/index.html", gin.H{
		"title":    "Latest posts",
		"page_obj": res,
	})
}

func (s *Server) groupPosts(c *gin.Context) {
	res, err := s.feed.Group(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"title":    res.Group.Title,
		"group":    res.Group,
		"page_obj": &res.Result,
	})
}

func (s *Server) profile(c *gin.Context) {
	viewer := middlewares.ActorFrom(c.Request.Context())
	res, err := s.feed.Profile(c.Request.Context(), viewer, c.Param("username"), c.Query("page"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "posts/profile.html", gin.H{
		"title":      "Profile of " + res.Author.FullName(),
		"author":     res.Author,
		"following":  res.Following,
		"post_count": res.PostCount,
		"is_self":    viewer != nil && viewer.ID == res.Author.ID,
		"page_obj":   &res.Result,
	})
}

func (s *Server) postDetail(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		s.notFound(c)
		return
	}
	ctx := c.Request.Context()
	detail, err := s.feed.PostDetail(ctx, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	actor := middlewares.ActorFrom(ctx)
	s.render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"title":         detail.Post.String(),
		"post":          detail.Post,
		"comments":      detail.Comments,
		"counter":       detail.AuthorPostCount,
		"is_author":     actor != nil && actor.ID == detail.Post.AuthorID,
		"comment_error": s.sessions.PopString(ctx, flashCommentError),
	})
}

func (s *Server) followIndex(c *gin.Context) {
	actor := middlewares.ActorFrom(c.Request.Context())
	res, err := s.feed.Follow(c.Request.Context(), actor, c.Query("page"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "posts/follow.html", gin.H{
		"title":    "Posts of authors you follow",
		"page_obj": res,
	})
}

func (s *Server) profileFollow(c *gin.Context) {
	actor := middlewares.ActorFrom(c.Request.Context())
	author, err := s.follows.Follow(c.Request.Context(), actor, c.Param("username"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}

func (s *Server) profileUnfollow(c *gin.Context) {
	actor := middlewares.ActorFrom(c.Request.Context())
	author, err := s.follows.Unfollow(c.Request.Context(), actor, c.Param("username"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}
