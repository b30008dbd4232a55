package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Luismorlan/yatube/activity"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLRUStore(t *testing.T) {
	ctx := context.Background()
	store, err := NewLRUStore(2)
	require.Nil(t, err)
	now := time.Now()
	store.now = func() time.Time { return now }

	require.Nil(t, store.Set(ctx, "/", []byte("home"), 20*time.Second))
	body, ok, err := store.Get(ctx, "/")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, "home", string(body))

	t.Run("expires", func(t *testing.T) {
		now = now.Add(20 * time.Second)
		_, ok, _ := store.Get(ctx, "/")
		assert.False(t, ok)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		store.Set(ctx, "a", []byte("a"), time.Minute)
		store.Set(ctx, "b", []byte("b"), time.Minute)
		store.Set(ctx, "c", []byte("c"), time.Minute)
		_, ok, _ := store.Get(ctx, "a")
		assert.False(t, ok)
		_, ok, _ = store.Get(ctx, "c")
		assert.True(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		require.Nil(t, store.Clear(ctx))
		_, ok, _ := store.Get(ctx, "c")
		assert.False(t, ok)
	})
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisStore(client)

	_, ok, err := store.Get(ctx, "/")
	require.Nil(t, err)
	assert.False(t, ok)

	require.Nil(t, store.Set(ctx, "/", []byte("home"), 20*time.Second))
	require.Nil(t, store.Set(ctx, "/?page=2", []byte("page two"), 20*time.Second))
	require.Nil(t, client.Set(ctx, "unrelated", "keep", 0).Err())

	body, ok, err := store.Get(ctx, "/")
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, "home", string(body))
	assert.Equal(t, 20*time.Second, mr.TTL(RedisKeyPrefix+"/"))

	mr.FastForward(21 * time.Second)
	_, ok, _ = store.Get(ctx, "/")
	assert.False(t, ok)

	require.Nil(t, store.Clear(ctx))
	_, ok, _ = store.Get(ctx, "/?page=2")
	assert.False(t, ok)
	assert.True(t, mr.Exists("unrelated"))
}

func newCachedRouter(t *testing.T, store Store, bypass Bypass, render func() string) *gin.Engine {
	router := gin.New()
	router.Use(CachePage(store, 20*time.Second, bypass, activity.NopPublisher{}))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, htmlContentType, []byte(render()))
	})
	router.GET("/broken", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, render())
	})
	return router
}

func get(router http.Handler, uri string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, uri, nil))
	return w
}

func TestCachePage_ServesStaleUntilCleared(t *testing.T) {
	store, err := NewLRUStore(16)
	require.Nil(t, err)
	content := "C1"
	router := newCachedRouter(t, store, nil, func() string { return content })

	first := get(router, "/")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "C1", first.Body.String())

	content = "C2"
	assert.Equal(t, "C1", get(router, "/").Body.String())
	// different uri is a different entry
	assert.Equal(t, "C2", get(router, "/?page=1").Body.String())

	require.Nil(t, store.Clear(context.Background()))
	assert.Equal(t, "C2", get(router, "/").Body.String())
}

func TestCachePage_SkipsErrorsAndBypass(t *testing.T) {
	store, err := NewLRUStore(16)
	require.Nil(t, err)
	renders := 0
	bypass := func(c *gin.Context) bool { return c.GetHeader("X-Logged-In") != "" }
	router := newCachedRouter(t, store, bypass, func() string {
		renders++
		return "body"
	})

	get(router, "/broken")
	get(router, "/broken")
	assert.Equal(t, 2, renders)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Logged-In", "1")
		router.ServeHTTP(w, req)
	}
	assert.Equal(t, 4, renders)

	get(router, "/")
	get(router, "/")
	assert.Equal(t, 5, renders)
}
