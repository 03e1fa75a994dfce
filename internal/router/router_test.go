package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"yatube/internal/model"
	"yatube/internal/pkg"
	"yatube/internal/repository/memory"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// okVerifier 测试里放过所有验证码
type okVerifier struct{}

func (okVerifier) VerifyCode(scope, email, code string) (bool, error) { return true, nil }

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cache  *memory.PageCache
	tokens *memory.TokenStore
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.FollowOutbox{},
	))

	cache := memory.NewPageCache()
	tokens := memory.NewTokenStore()

	r := InitRouter(Options{
		DB:       db,
		Cache:    cache,
		Tokens:   tokens,
		Verifier: okVerifier{},
		PageSize: 10,
		CacheTTL: time.Minute,
	})
	return &testEnv{router: r, db: db, cache: cache, tokens: tokens}
}

// loginUser 直接造用户并签发登录态，绕过注册/邮箱流程
func (e *testEnv) loginUser(t *testing.T, username string) (uint64, string) {
	t.Helper()
	user := &model.User{
		Username: username,
		Password: "hash",
		Email:    fmt.Sprintf("%s@example.com", username),
	}
	require.NoError(t, e.db.Create(user).Error)

	pair, err := pkg.GeneratePair(user.ID)
	require.NoError(t, err)
	require.NoError(t, e.tokens.Add(user.ID, pair.AccessToken))
	return user.ID, pair.AccessToken
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestAuthGate(t *testing.T) {
	env := setupEnv(t)
	_, token := env.loginUser(t, "leo")

	t.Run("guest create post rejected", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/posts", "", `{"text":"hi"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("guest follow feed rejected", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/follow/posts", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/posts", "not-a-jwt", `{"text":"hi"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/posts", token, `{"text":"hi"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGuestCommentNeverPersists(t *testing.T) {
	env := setupEnv(t)
	authorID, token := env.loginUser(t, "leo")

	post := &model.Post{Text: "a post", AuthorID: authorID}
	require.NoError(t, env.db.Create(post).Error)

	w := env.do(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", `{"text":"sneaky"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var n int64
	require.NoError(t, env.db.Model(&model.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)

	w = env.do(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", post.ID), token, `{"text":"legit"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, env.db.Model(&model.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestEditAuthorization(t *testing.T) {
	env := setupEnv(t)
	authorID, authorToken := env.loginUser(t, "leo")
	_, intruderToken := env.loginUser(t, "mia")

	post := &model.Post{Text: "original", AuthorID: authorID}
	require.NoError(t, env.db.Create(post).Error)

	t.Run("non-author is silently redirected", func(t *testing.T) {
		w := env.do(http.MethodPost, fmt.Sprintf("/api/posts/%d", post.ID), intruderToken, `{"text":"hijacked"}`)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/api/posts", w.Header().Get("Location"))

		var saved model.Post
		require.NoError(t, env.db.First(&saved, post.ID).Error)
		assert.Equal(t, "original", saved.Text)
	})

	t.Run("author edits in place", func(t *testing.T) {
		w := env.do(http.MethodPost, fmt.Sprintf("/api/posts/%d", post.ID), authorToken, `{"text":"updated"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var saved model.Post
		require.NoError(t, env.db.First(&saved, post.ID).Error)
		assert.Equal(t, "updated", saved.Text)
		assert.Equal(t, authorID, saved.AuthorID)

		var n int64
		require.NoError(t, env.db.Model(&model.Post{}).Count(&n).Error)
		assert.Equal(t, int64(1), n)
	})
}

func TestGlobalFeedPageSize(t *testing.T) {
	env := setupEnv(t)
	authorID, _ := env.loginUser(t, "leo")
	for i := 1; i <= 20; i++ {
		require.NoError(t, env.db.Create(&model.Post{Text: fmt.Sprintf("post %d", i), AuthorID: authorID}).Error)
	}

	w := env.do(http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Posts      []model.Post `json:"posts"`
		Page       int          `json:"page"`
		TotalPages int          `json:"total_pages"`
		Count      int64        `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 10)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, int64(20), resp.Count)
}

func TestFollowEndpoints(t *testing.T) {
	env := setupEnv(t)
	_, viewerToken := env.loginUser(t, "mia")
	authorID, _ := env.loginUser(t, "leo")
	require.NoError(t, env.db.Create(&model.Post{Text: "leo post", AuthorID: authorID}).Error)

	t.Run("follow then feed shows the author", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/profiles/leo/follow", viewerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"changed":true`)

		w = env.do(http.MethodGet, "/api/follow/posts", viewerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "leo post")
	})

	t.Run("unfollow then absent unfollow is 404", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/profiles/leo/unfollow", viewerToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(http.MethodPost, "/api/profiles/leo/unfollow", viewerToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/profiles/mia/follow", viewerToken, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown username is 404", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/profiles/ghost/follow", viewerToken, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProfileEndpoint(t *testing.T) {
	env := setupEnv(t)
	authorID, _ := env.loginUser(t, "leo")
	_, viewerToken := env.loginUser(t, "mia")
	require.NoError(t, env.db.Create(&model.Post{Text: "a post", AuthorID: authorID}).Error)

	t.Run("unknown username is 404", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/profiles/ghost", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("guest sees stats without following flag", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/profiles/leo", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"following":false`)
		assert.Contains(t, w.Body.String(), `"post_count":1`)
	})

	t.Run("follower sees following true", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/profiles/leo/follow", viewerToken, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = env.do(http.MethodGet, "/api/profiles/leo", viewerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"following":true`)
	})
}

func TestPageCacheBehavior(t *testing.T) {
	env := setupEnv(t)
	authorID, token := env.loginUser(t, "leo")
	require.NoError(t, env.db.Create(&model.Post{Text: "first", AuthorID: authorID}).Error)

	first := env.do(http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, first.Code)

	// 中间发新帖，TTL 内仍返回缓存的旧页，逐字节一致
	w := env.do(http.MethodPost, "/api/posts", token, `{"text":"second"}`)
	require.Equal(t, http.StatusOK, w.Code)

	second := env.do(http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.NotContains(t, second.Body.String(), "second")

	// 强制清空后现场渲染，新帖可见
	w = env.do(http.MethodPost, "/api/cache/clear", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	third := env.do(http.MethodGet, "/api/posts", "", "")
	require.Equal(t, http.StatusOK, third.Code)
	assert.NotEqual(t, first.Body.Bytes(), third.Body.Bytes())
	assert.Contains(t, third.Body.String(), "second")
}

func TestGroupEndpoints(t *testing.T) {
	env := setupEnv(t)
	authorID, token := env.loginUser(t, "leo")

	w := env.do(http.MethodPost, "/api/groups", token, `{"title":"Cats","slug":"cats","description":"all about cats"}`)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/groups", token, `{"title":"Other","slug":"cats"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("group feed holds grouped post only", func(t *testing.T) {
		var group model.Group
		require.NoError(t, env.db.Where("slug = ?", "cats").First(&group).Error)
		require.NoError(t, env.db.Create(&model.Post{Text: "grouped", AuthorID: authorID, GroupID: &group.ID}).Error)
		require.NoError(t, env.db.Create(&model.Post{Text: "loose", AuthorID: authorID}).Error)

		w := env.do(http.MethodGet, "/api/groups/cats/posts", "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "grouped")
		assert.NotContains(t, w.Body.String(), "loose")
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/groups/birds/posts", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
