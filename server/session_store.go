package server

import (
	"context"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const (
	SessionKeyPrefix = "yatube:session:"
	SessionCookie    = "yatube_session"
)

// RedisSessionStore is a scs.Store on top of go-redis, sessions survive
// restarts and are shared between instances.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Find(token string) ([]byte, bool, error) {
	b, err := s.client.Get(context.Background(), SessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "cannot find session")
	}
	return b, true, nil
}

func (s *RedisSessionStore) Commit(token string, b []byte, expiry time.Time) error {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return s.Delete(token)
	}
	if err := s.client.Set(context.Background(), SessionKeyPrefix+token, b, ttl).Err(); err != nil {
		return errors.Wrap(err, "cannot commit session")
	}
	return nil
}

func (s *RedisSessionStore) Delete(token string) error {
	if err := s.client.Del(context.Background(), SessionKeyPrefix+token).Err(); err != nil {
		return errors.Wrap(err, "cannot delete session")
	}
	return nil
}

// NewSessionManager builds the session manager, store nil keeps sessions in
// memory.
func NewSessionManager(store scs.Store, lifetime time.Duration, secure bool) *scs.SessionManager {
	sessions := scs.New()
	if store != nil {
		sessions.Store = store
	}
	if lifetime > 0 {
		sessions.Lifetime = lifetime
	}
	sessions.Cookie.Name = SessionCookie
	sessions.Cookie.HttpOnly = true
	sessions.Cookie.Secure = secure
	return sessions
}
