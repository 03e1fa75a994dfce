package pkg

import (
	"context"
	"time"
)

// CachedPage 缓存的整页响应，命中时原样返回
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache 整页缓存服务。实现者：redis 版（线上）、内存版（测试）。
// Get 未命中返回 (nil, nil)；Clear 全量失效
type PageCache interface {
	Get(ctx context.Context, key string) (*CachedPage, error)
	Put(ctx context.Context, key string, page *CachedPage, ttl time.Duration) error
	Clear(ctx context.Context) error
}
