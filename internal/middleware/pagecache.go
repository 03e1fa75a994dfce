package middleware

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"yatube/internal/pkg"

	"github.com/gin-gonic/gin"
)

// bodyRecorder 在写出响应的同时留一份副本
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache 整页缓存中间件。以「路径+查询串」为 key，命中时原样返回缓存体，
// TTL 内的陈旧内容是接受的行为；只缓存 200 响应。
// 缓存服务显式注入，不依赖全局状态
func PageCache(cache pkg.PageCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.URL.RequestURI()

		page, err := cache.Get(c.Request.Context(), key)
		if err != nil {
			// 缓存故障退化为直接渲染
			log.Printf("pagecache get err: %v", err)
		}
		if page != nil {
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		if rec.Status() != http.StatusOK {
			return
		}
		stored := &pkg.CachedPage{
			Status:      rec.Status(),
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.buf.Bytes(),
		}
		if err := cache.Put(c.Request.Context(), key, stored, ttl); err != nil {
			log.Printf("pagecache put err: %v", err)
		}
	}
}
