package service

import (
	"context"
	"strings"
	"sync"
	"time"
)

// GenreCache TMDB 类型 ID → 名称的映射缓存。
// 到期后读穿刷新；并发未命中可能触发多余的上游刷新，可接受。
type GenreCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	fetch     func(ctx context.Context) (map[int]string, error)
	genres    map[int]string
	fetchedAt time.Time
}

// NewGenreCache fetch 负责从上游拉取完整映射
func NewGenreCache(ttl time.Duration, fetch func(ctx context.Context) (map[int]string, error)) *GenreCache {
	return &GenreCache{
		ttl:   ttl,
		now:   time.Now,
		fetch: fetch,
	}
}

// Get 返回当前映射，缓存为空或过期时先刷新
func (c *GenreCache) Get(ctx context.Context) (map[int]string, error) {
	c.mu.RLock()
	fresh := c.genres != nil && c.now().Sub(c.fetchedAt) <= c.ttl
	genres := c.genres
	c.mu.RUnlock()

	if fresh {
		return genres, nil
	}

	fetched, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.genres = fetched
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return fetched, nil
}

// MapIDs 将类型 ID 列表映射为逗号拼接的名称，未知 ID 记为 Unknown
func (c *GenreCache) MapIDs(ctx context.Context, ids []int) (string, error) {
	if len(ids) == 0 {
		return "Unknown", nil
	}

	genres, err := c.Get(ctx)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := genres[id]
		if !ok {
			name = "Unknown"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", "), nil
}
