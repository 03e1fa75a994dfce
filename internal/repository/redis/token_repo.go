package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTokenNotFound = errors.New("token not found")

const sessionKeyPrefix = "session:token"

// TokenRepository 登录态存储，单点登录：同一账号新登录顶掉旧 token。
// TTL 由 config 注入，每次通过门卫校验后顺延
type TokenRepository struct {
	TTL time.Duration
}

func NewTokenRepository(ttl time.Duration) *TokenRepository {
	return &TokenRepository{TTL: ttl}
}

func (r *TokenRepository) key(userID uint64) string {
	return fmt.Sprintf("%s:%d", sessionKeyPrefix, userID)
}

func (r *TokenRepository) Add(userID uint64, token string) error {
	if err := Client.Set(context.Background(), r.key(userID), token, r.TTL).Err(); err != nil {
		return fmt.Errorf("set session token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Get(userID uint64) (string, error) {
	token, err := Client.Get(context.Background(), r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get session token: %w", err)
	}
	return token, nil
}

func (r *TokenRepository) Extend(userID uint64) error {
	if err := Client.Expire(context.Background(), r.key(userID), r.TTL).Err(); err != nil {
		return fmt.Errorf("extend session token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Delete(userID uint64) error {
	if err := Client.Del(context.Background(), r.key(userID)).Err(); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}
