package server

import (
	"net/http"

	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/server/middlewares"
	"github.com/Luismorlan/yatube/service"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const invalidLoginMsg = "Please enter a correct username and password. Note that both fields may be case-sensitive."

// logIn binds user to the session, renewing the token against fixation.
func (s *Server) logIn(c *gin.Context, user *model.User) error {
	ctx := c.Request.Context()
	if err := s.sessions.RenewToken(ctx); err != nil {
		return errors.Wrap(err, "cannot renew session token")
	}
	s.sessions.Put(ctx, middlewares.SessionUserKey, int(user.ID))
	return nil
}

func (s *Server) signUpForm(c *gin.Context) {
	s.render(c, http.StatusOK, "users/signup.html", gin.H{
		"title": "Sign up",
		"form":  &forms.SignUpForm{},
	})
}

func (s *Server) signUp(c *gin.Context) {
	form := &forms.SignUpForm{}
	var user *model.User
	err := bindForm(c, form, "username")
	if err == nil {
		user, err = s.users.SignUp(c.Request.Context(), form)
	}
	if fe, ok := forms.AsFieldErrors(err); ok {
		s.render(c, http.StatusOK, "users/signup.html", gin.H{
			"title":  "Sign up",
			"form":   form,
			"errors": fe,
		})
		return
	}
	if err != nil {
		s.serverError(c, err)
		return
	}
	if err := s.logIn(c, user); err != nil {
		s.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) loginForm(c *gin.Context) {
	s.render(c, http.StatusOK, "users/login.html", gin.H{
		"title": "Log in",
		"form":  &forms.LoginForm{},
		"next":  c.Query("next"),
	})
}

func (s *Server) login(c *gin.Context) {
	form := &forms.LoginForm{}
	var user *model.User
	err := bindForm(c, form, "username")
	next := c.PostForm("next")
	if next == "" {
		next = c.Query("next")
	}

	if err == nil {
		user, err = s.users.Authenticate(c.Request.Context(), form)
	}
	if err != nil {
		fe, isFieldErr := forms.AsFieldErrors(err)
		if !isFieldErr && !errors.Is(err, service.ErrInvalidCredentials) {
			s.serverError(c, err)
			return
		}
		s.render(c, http.StatusOK, "users/login.html", gin.H{
			"title":       "Log in",
			"form":        form,
			"errors":      fe,
			"login_error": errors.Is(err, service.ErrInvalidCredentials),
			"error_msg":   invalidLoginMsg,
			"next":        next,
		})
		return
	}
	if err := s.logIn(c, user); err != nil {
		s.serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, middlewares.SafeNext(next))
}

func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.Destroy(c.Request.Context()); err != nil {
		s.serverError(c, err)
		return
	}
	// The page must not show the user as still logged in.
	c.Request = c.Request.WithContext(middlewares.WithActor(c.Request.Context(), nil))
	s.render(c, http.StatusOK, "users/logged_out.html", gin.H{"title": "Logged out"})
}
