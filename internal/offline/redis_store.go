package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
)

const (
	redisNamesKey   = "offline:caches"
	redisCacheKeyFn = "offline:cache:%s"
)

// RedisStore 把每个缓存保存为一个 Redis hash，field 为请求 URL，value 为 JSON 编码的 Entry。
// 缓存名集合保存在 offline:caches 中，供 Activate 清理旧缓存。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cacheKey(cacheName string) string {
	return fmt.Sprintf(redisCacheKeyFn, cacheName)
}

func (s *RedisStore) Get(ctx context.Context, cacheName, key string) (*Entry, bool, error) {
	raw, err := s.client.HGet(ctx, cacheKey(cacheName), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis hget: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("decode cached entry: %w", err)
	}
	return &entry, true, nil
}

func (s *RedisStore) Put(ctx context.Context, cacheName, key string, entry *Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cached entry: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, redisNamesKey, cacheName)
		pipe.HSet(ctx, cacheKey(cacheName), key, raw)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

func (s *RedisStore) Names(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, redisNamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *RedisStore) DeleteCache(ctx context.Context, cacheName string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, cacheKey(cacheName))
		pipe.SRem(ctx, redisNamesKey, cacheName)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete cache: %w", err)
	}
	return nil
}
