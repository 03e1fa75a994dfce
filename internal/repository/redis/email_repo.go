package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultEmailCodeTTL = 5 * time.Minute
	EmailCodePrefix     = "email:code"
)

var (
	ErrEmailCodeSetFailed = errors.New("email code set failed")
	ErrEmailCodeNotFound  = errors.New("email code not found")
	ErrEmailCodeDelFailed = errors.New("email code delete failed")
)

// EmailCodeRepository 邮箱验证码存储，按 scope（register 等）隔离
type EmailCodeRepository struct{}

func (e *EmailCodeRepository) key(scope, email string) string {
	return fmt.Sprintf("%s:%s:%s", EmailCodePrefix, scope, email)
}

func (e *EmailCodeRepository) SetCode(scope, email, code string) error {
	if err := Client.Set(context.Background(), e.key(scope, email), code, DefaultEmailCodeTTL).Err(); err != nil {
		return ErrEmailCodeSetFailed
	}
	return nil
}

func (e *EmailCodeRepository) GetCode(scope, email string) (string, error) {
	val, err := Client.Get(context.Background(), e.key(scope, email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrEmailCodeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get email code: %w", err)
	}
	return val, nil
}

// DeleteCode 验证通过后删除，验证码一次性使用
func (e *EmailCodeRepository) DeleteCode(scope, email string) error {
	if err := Client.Del(context.Background(), e.key(scope, email)).Err(); err != nil {
		return ErrEmailCodeDelFailed
	}
	return nil
}
