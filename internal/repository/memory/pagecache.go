// Package memory 提供 redis 仓储的内存替身，测试用
package memory

import (
	"context"
	"sync"
	"time"

	"yatube/internal/pkg"
)

type cacheEntry struct {
	page      *pkg.CachedPage
	expiresAt time.Time
}

// PageCache pkg.PageCache 的内存实现
type PageCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewPageCache() *PageCache {
	return &PageCache{entries: make(map[string]cacheEntry)}
}

func (c *PageCache) Get(_ context.Context, key string) (*pkg.CachedPage, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	return e.page, nil
}

func (c *PageCache) Put(_ context.Context, key string, page *pkg.CachedPage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{page: page, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *PageCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
	return nil
}
