package middlewares

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
)

const (
	// SessionUserKey holds the logged in user id in the session.
	SessionUserKey = "user_id"

	LoginPath = "/auth/login/"
)

type actorKey struct{}

// UserLoader resolves the session user id.
type UserLoader func(ctx context.Context, id uint) (*model.User, error)

// WithActor returns a context carrying the authenticated user.
func WithActor(ctx context.Context, actor *model.User) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the authenticated user of the request, nil if anonymous.
func ActorFrom(ctx context.Context) *model.User {
	actor, _ := ctx.Value(actorKey{}).(*model.User)
	return actor
}

// LoadActor resolves the session's user and stores it in the request context.
// A session pointing to a deleted user is logged out.
func LoadActor(sessions *scs.SessionManager, load UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := sessions.GetInt(ctx, SessionUserKey)
		if id <= 0 {
			c.Next()
			return
		}

		actor, err := load(ctx, uint(id))
		if err != nil {
			if repository.IsNotFound(err) {
				sessions.Remove(ctx, SessionUserKey)
			} else {
				Logger.Log.Error("cannot load session user: ", err)
			}
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithActor(ctx, actor))
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page, remembering
// where they were heading in "next".
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFrom(c.Request.Context()) == nil {
			c.Redirect(http.StatusFound, LoginURL(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoginURL builds /auth/login/?next=<uri>, slashes of uri stay readable.
func LoginURL(next string) string {
	return LoginPath + "?next=" + strings.ReplaceAll(url.QueryEscape(next), "%2F", "/")
}

// SafeNext returns next if it is a local path, "/" otherwise.
func SafeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
