package file_store

import (
	"context"
	"sync"
)

// FakeFileStore keeps objects in memory, for tests.
type FakeFileStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewFakeFileStore() *FakeFileStore {
	return &FakeFileStore{objects: map[string][]byte{}}
}

func (s *FakeFileStore) Store(ctx context.Context, key string, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

func (s *FakeFileStore) GetUrlFromKey(key string) string {
	return "/fake/" + key
}

func (s *FakeFileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Has returns true if key is stored.
func (s *FakeFileStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func (s *FakeFileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
