package middleware

import (
	"net/http"
	"strings"

	"yatube/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// TokenStore 登录态校验需要的最小接口，线上是 redis，测试用内存实现
type TokenStore interface {
	Get(userID uint64) (string, error)
	Extend(userID uint64) error
}

// RequireAuth 显式登录门卫：校验 Bearer token 并与存储中的登录态比对，
// 任一环节失败都在 handler 之前 401 掐断
func RequireAuth(store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c, store)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth 匿名可访问的页面用：带合法 token 就注入 user_id，否则直接放行
func OptionalAuth(store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c, store); ok {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, store TokenStore) (uint64, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}
	tokenStr := parts[1]

	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return 0, false
	}

	// 与存储中的登录态比对，顶号登录会使旧 token 失效
	origin, err := store.Get(claims.UserID)
	if err != nil || origin != tokenStr {
		return 0, false
	}

	// 校验通过后顺延过期时间
	_ = store.Extend(claims.UserID)
	return claims.UserID, true
}

// UserIDFromCtx handler 里取当前登录用户，未登录返回 0
func UserIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
