package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"yatube/internal/pkg"

	"github.com/redis/go-redis/v9"
)

const (
	PageCachePrefix = "pagecache:page" // 整页渲染结果
	PageCacheVerKey = "pagecache:ver"  // 版本号，Clear 时自增使旧版本全部失效
)

// PageCacheRepository 整页缓存的 redis 实现。key 按「版本号+请求」组合，
// 全量失效只需要把版本号 +1，旧键靠 TTL 自己过期
type PageCacheRepository struct{}

func (r *PageCacheRepository) pageKey(ver int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", PageCachePrefix, ver, key)
}

func (r *PageCacheRepository) version(ctx context.Context) (int64, error) {
	ver, err := Client.Get(ctx, PageCacheVerKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return ver, err
}

func (r *PageCacheRepository) Get(ctx context.Context, key string) (*pkg.CachedPage, error) {
	ver, err := r.version(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := Client.Get(ctx, r.pageKey(ver, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var page pkg.CachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *PageCacheRepository) Put(ctx context.Context, key string, page *pkg.CachedPage, ttl time.Duration) error {
	ver, err := r.version(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return Client.Set(ctx, r.pageKey(ver, key), raw, ttl).Err()
}

// Clear 全量失效
func (r *PageCacheRepository) Clear(ctx context.Context) error {
	return Client.Incr(ctx, PageCacheVerKey).Err()
}
