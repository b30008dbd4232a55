package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const (
	RedisKeyPrefix = "yatube:page:"
	scanBatchSize  = 100
)

// RedisStore shares cached pages between every web server instance.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := s.client.Get(ctx, RedisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "cannot get cached page %s", key)
	}
	return body, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, RedisKeyPrefix+key, body, ttl).Err(); err != nil {
		return errors.Wrapf(err, "cannot cache page %s", key)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, RedisKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return errors.Wrap(err, "cannot scan cached pages")
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "cannot delete cached pages")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
