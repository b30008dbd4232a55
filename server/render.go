package server

import (
	"net/http"
	"strconv"

	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/repository"
	"github.com/Luismorlan/yatube/server/middlewares"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// render adds what every page needs (the actor) and renders template name.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["actor"] = middlewares.ActorFrom(c.Request.Context())
	data["path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "core/404.html", gin.H{"title": "Page not found"})
}

func (s *Server) serverError(c *gin.Context, err error) {
	Logger.Log.WithFields(logrus.Fields{
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	}).Error(err)
	s.render(c, http.StatusInternalServerError, "core/500.html", gin.H{"title": "Server error"})
}

// fail renders not found for lookup misses and a server error otherwise.
func (s *Server) fail(c *gin.Context, err error) {
	if repository.IsNotFound(err) {
		s.notFound(c)
		return
	}
	s.serverError(c, err)
}

const invalidSubmissionMsg = "Invalid form submission."

// bindForm binds the request body into form. A body gin cannot parse is
// logged and reported as a field error on field.
func bindForm(c *gin.Context, form interface{}, field string) error {
	if err := c.ShouldBind(form); err != nil {
		Logger.Log.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Warn("cannot bind form: ", err)
		return forms.FieldErrors{field: invalidSubmissionMsg}
	}
	return nil
}

// postIDParam parses :post_id, false when it is not a positive integer.
func postIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func profileURL(username string) string {
	return "/profile/" + username + "/"
}

func postURL(id uint) string {
	return "/posts/" + strconv.FormatUint(uint64(id), 10) + "/"
}
