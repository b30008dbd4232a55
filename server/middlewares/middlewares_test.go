package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLoginURL(t *testing.T) {
	assert.Equal(t, "/auth/login/?next=/create/", LoginURL("/create/"))
	assert.Equal(t, "/auth/login/?next=/follow/%3Fpage%3D2", LoginURL("/follow/?page=2"))
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/create/", SafeNext("/create/"))
	assert.Equal(t, "/", SafeNext(""))
	assert.Equal(t, "/", SafeNext("https://evil.example"))
	assert.Equal(t, "/", SafeNext("//evil.example"))
}

func TestActorContext(t *testing.T) {
	assert.Nil(t, ActorFrom(context.Background()))
	u := &model.User{ID: 1, Username: "leo"}
	assert.Equal(t, u, ActorFrom(WithActor(context.Background(), u)))
}

func TestRequireLogin(t *testing.T) {
	router := gin.New()
	router.GET("/create/", RequireLogin(), func(c *gin.Context) {
		c.String(http.StatusOK, "form")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/create/", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/create/", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/create/", nil)
	req = req.WithContext(WithActor(req.Context(), &model.User{ID: 1}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadActor(t *testing.T) {
	sessions := scs.New()
	users := map[uint]*model.User{1: {ID: 1, Username: "leo"}}
	load := func(ctx context.Context, id uint) (*model.User, error) {
		if u, ok := users[id]; ok {
			return u, nil
		}
		return nil, errors.Wrap(repository.ErrNotFound, "missing")
	}

	router := gin.New()
	router.Use(LoadActor(sessions, load))
	router.GET("/login/:id", func(c *gin.Context) {
		id := 1
		if c.Param("id") != "1" {
			id = 2
		}
		sessions.Put(c.Request.Context(), SessionUserKey, id)
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		if actor := ActorFrom(c.Request.Context()); actor != nil {
			c.String(http.StatusOK, actor.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	handler := sessions.LoadAndSave(router)

	whoami := func(cookie *http.Cookie) string {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if cookie != nil {
			req.AddCookie(cookie)
		}
		handler.ServeHTTP(w, req)
		return w.Body.String()
	}
	login := func(id string) *http.Cookie {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login/"+id, nil))
		cookies := w.Result().Cookies()
		require.NotEmpty(t, cookies)
		return cookies[0]
	}

	assert.Equal(t, "anonymous", whoami(nil))
	assert.Equal(t, "leo", whoami(login("1")))
	assert.Equal(t, "anonymous", whoami(login("2")))
}
