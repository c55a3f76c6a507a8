package offline

import (
	"context"
	"net/http"
	"sort"
	"sync"
)

// Entry 是缓存中保存的一条响应。
type Entry struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// Store 按缓存名分组保存响应，语义对应浏览器的 CacheStorage。
type Store interface {
	Get(ctx context.Context, cacheName, key string) (*Entry, bool, error)
	Put(ctx context.Context, cacheName, key string, entry *Entry) error
	// Names 返回所有存在的缓存名
	Names(ctx context.Context) ([]string, error)
	DeleteCache(ctx context.Context, cacheName string) error
}

// MemoryStore 是进程内的 Store 实现，并发安全。
type MemoryStore struct {
	mu     sync.RWMutex
	caches map[string]map[string]*Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{caches: make(map[string]map[string]*Entry)}
}

func (s *MemoryStore) Get(_ context.Context, cacheName, key string) (*Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.caches[cacheName][key]
	if !ok {
		return nil, false, nil
	}
	return entry.clone(), true, nil
}

func (s *MemoryStore) Put(_ context.Context, cacheName, key string, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache, ok := s.caches[cacheName]
	if !ok {
		cache = make(map[string]*Entry)
		s.caches[cacheName] = cache
	}
	cache[key] = entry.clone()
	return nil
}

func (s *MemoryStore) Names(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) DeleteCache(_ context.Context, cacheName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.caches, cacheName)
	return nil
}

func (e *Entry) clone() *Entry {
	return &Entry{
		Status: e.Status,
		Header: e.Header.Clone(),
		Body:   append([]byte(nil), e.Body...),
	}
}
