package server

import (
	"net/http"

	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// bindPostForm reads text, group and the optional image of a post form.
func (s *Server) bindPostForm(c *gin.Context) (*forms.PostForm, error) {
	form := &forms.PostForm{}
	if err := bindForm(c, form, "text"); err != nil {
		return form, err
	}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return form, nil
	}
	if err != nil {
		return form, errors.Wrap(err, "cannot read image upload")
	}
	file, err := header.Open()
	if err != nil {
		return form, errors.Wrap(err, "cannot open image upload")
	}
	defer file.Close()

	img, err := forms.ReadImageUpload(header.Filename, file, s.setting.MAX_IMAGE_BYTES)
	if err != nil {
		return form, err
	}
	form.Image = img
	return form, nil
}

func (s *Server) renderPostForm(c *gin.Context, form *forms.PostForm, fieldErrors forms.FieldErrors, post *model.Post) {
	groups, err := s.repos.Groups.List(c.Request.Context())
	if err != nil {
		s.serverError(c, err)
		return
	}
	title := "New post"
	if post != nil {
		title = "Edit post"
	}
	s.render(c, http.StatusOK, "posts/post_create.html", gin.H{
		"title":        title,
		"form":         form,
		"errors":       fieldErrors,
		"group_choice": groups,
		"post":         post,
		"is_edit":      post != nil,
	})
}

func (s *Server) postCreateForm(c *gin.Context) {
	s.renderPostForm(c, &forms.PostForm{}, nil, nil)
}

func (s *Server) postCreate(c *gin.Context) {
	actor := middlewares.ActorFrom(c.Request.Context())
	form, err := s.bindPostForm(c)
	if err == nil {
		_, err = s.posts.Create(c.Request.Context(), actor, form)
	}
	if fe, ok := forms.AsFieldErrors(err); ok {
		s.renderPostForm(c, form, fe, nil)
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(actor.Username))
}

func (s *Server) postEditForm(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		s.notFound(c)
		return
	}
	post, err := s.repos.Posts.Get(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	form, err := forms.PostFormFromPost(post)
	if err != nil {
		s.serverError(c, err)
		return
	}
	s.renderPostForm(c, form, nil, post)
}

// postEdit writes only when the actor is the author. Everyone else gets the
// form of the stored post back.
func (s *Server) postEdit(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		s.notFound(c)
		return
	}
	ctx := c.Request.Context()
	actor := middlewares.ActorFrom(ctx)

	form, bindErr := s.bindPostForm(c)
	if bindErr != nil {
		if _, isFieldErr := forms.AsFieldErrors(bindErr); !isFieldErr {
			s.serverError(c, bindErr)
			return
		}
	}

	var (
		post    *model.Post
		applied bool
		err     error
	)
	if bindErr == nil {
		post, applied, err = s.posts.Edit(ctx, actor, id, form)
	} else {
		post, err = s.repos.Posts.Get(ctx, id)
		err = firstErr(err, bindErr)
	}
	if applied {
		c.Redirect(http.StatusFound, postURL(id))
		return
	}

	fe, isFieldErr := forms.AsFieldErrors(err)
	if err != nil && !isFieldErr {
		s.fail(c, err)
		return
	}
	if post.AuthorID != actor.ID {
		stored, ferr := forms.PostFormFromPost(post)
		if ferr != nil {
			s.serverError(c, ferr)
			return
		}
		s.renderPostForm(c, stored, nil, post)
		return
	}
	s.renderPostForm(c, form, fe, post)
}

func (s *Server) postDelete(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		s.notFound(c)
		return
	}
	actor := middlewares.ActorFrom(c.Request.Context())
	deleted, err := s.posts.Delete(c.Request.Context(), actor, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !deleted {
		c.Redirect(http.StatusFound, postURL(id))
		return
	}
	c.Redirect(http.StatusFound, profileURL(actor.Username))
}

// addComment always lands back on the post, an invalid comment is reported
// through a one-shot flash.
func (s *Server) addComment(c *gin.Context) {
	id, ok := postIDParam(c)
	if !ok {
		s.notFound(c)
		return
	}
	ctx := c.Request.Context()
	actor := middlewares.ActorFrom(ctx)

	form := &forms.CommentForm{}
	err := bindForm(c, form, "text")
	if err == nil {
		_, err = s.comments.Add(ctx, actor, id, form)
	}
	if fe, isFieldErr := forms.AsFieldErrors(err); isFieldErr {
		s.sessions.Put(ctx, flashCommentError, fe.Get("text"))
	} else if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(id))
}

// firstErr returns the first non-nil lookup error, then the fallback.
func firstErr(lookupErr error, fallback error) error {
	if lookupErr != nil {
		return lookupErr
	}
	return fallback
}
