package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

type lruEntry struct {
	body      []byte
	expiresAt time.Time
}

// LRUStore is the in-process Store, used when no redis is configured.
type LRUStore struct {
	cache *lru.Cache
	now   func() time.Time
}

func NewLRUStore(size int) (*LRUStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create lru page cache")
	}
	return &LRUStore{cache: c, now: time.Now}, nil
}

func (s *LRUStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	entry := v.(lruEntry)
	if !s.now().Before(entry.expiresAt) {
		s.cache.Remove(key)
		return nil, false, nil
	}
	return entry.body, true, nil
}

func (s *LRUStore) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	s.cache.Add(key, lruEntry{body: body, expiresAt: s.now().Add(ttl)})
	return nil
}

func (s *LRUStore) Clear(ctx context.Context) error {
	s.cache.Purge()
	return nil
}
