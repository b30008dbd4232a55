package server

import (
	"context"
	"testing"
	"time"

	"github.com/Luismorlan/yatube/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.Nil(t, err)
	defer mr.Close()
	client, err := utils.GetRedisClientWithAddr(context.Background(), mr.Addr(), "")
	require.Nil(t, err)
	defer client.Close()

	store := NewRedisSessionStore(client)

	_, found, err := store.Find("missing")
	require.Nil(t, err)
	assert.False(t, found)

	require.Nil(t, store.Commit("token", []byte("data"), time.Now().Add(time.Hour)))
	assert.True(t, mr.Exists(SessionKeyPrefix+"token"))
	b, found, err := store.Find("token")
	require.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("data"), b)

	mr.FastForward(2 * time.Hour)
	_, found, err = store.Find("token")
	require.Nil(t, err)
	assert.False(t, found)

	require.Nil(t, store.Commit("token", []byte("data"), time.Now().Add(time.Hour)))
	require.Nil(t, store.Delete("token"))
	_, found, err = store.Find("token")
	require.Nil(t, err)
	assert.False(t, found)

	// Already expired sessions are removed instead of written.
	require.Nil(t, store.Commit("token", []byte("data"), time.Now().Add(time.Hour)))
	require.Nil(t, store.Commit("token", []byte("data"), time.Now().Add(-time.Second)))
	assert.False(t, mr.Exists(SessionKeyPrefix+"token"))
}

func TestNewSessionManager(t *testing.T) {
	sessions := NewSessionManager(nil, 48*time.Hour, true)
	assert.Equal(t, SessionCookie, sessions.Cookie.Name)
	assert.True(t, sessions.Cookie.Secure)
	assert.True(t, sessions.Cookie.HttpOnly)
	assert.Equal(t, 48*time.Hour, sessions.Lifetime)
}
