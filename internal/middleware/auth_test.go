package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/pkg"
	"yatube/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(store *memory.TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireAuth(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromCtx(c)})
	})
	r.GET("/public", OptionalAuth(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromCtx(c)})
	})
	return r
}

func doGet(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	store := memory.NewTokenStore()
	r := newAuthRouter(store)

	pair, err := pkg.GeneratePair(42)
	require.NoError(t, err)
	require.NoError(t, store.Add(42, pair.AccessToken))

	t.Run("missing header rejected", func(t *testing.T) {
		w := doGet(r, "/private", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		w := doGet(r, "/private", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token not matching stored session rejected", func(t *testing.T) {
		other, err := pkg.GeneratePair(7)
		require.NoError(t, err)
		w := doGet(r, "/private", "Bearer "+other.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stored token passes and injects user id", func(t *testing.T) {
		w := doGet(r, "/private", "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})

	t.Run("superseded token rejected", func(t *testing.T) {
		// 顶号登录：存储里的 token 被新登录覆盖后，旧 token 失效
		require.NoError(t, store.Add(42, "someone-logged-in-elsewhere"))

		w := doGet(r, "/private", "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	store := memory.NewTokenStore()
	r := newAuthRouter(store)

	t.Run("guest passes through anonymously", func(t *testing.T) {
		w := doGet(r, "/public", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})

	t.Run("valid token annotates the request", func(t *testing.T) {
		pair, err := pkg.GeneratePair(9)
		require.NoError(t, err)
		require.NoError(t, store.Add(9, pair.AccessToken))

		w := doGet(r, "/public", "Bearer "+pair.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":9`)
	})
}
