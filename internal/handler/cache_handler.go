package handler

import (
	"net/http"

	"yatube/internal/pkg"

	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	cache pkg.PageCache
}

func NewCacheHandler(cache pkg.PageCache) *CacheHandler {
	return &CacheHandler{cache: cache}
}

// Clear 强制清空整页缓存，清空后下一次请求现场渲染
func (h *CacheHandler) Clear(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "clear failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
