package router

import (
	"time"

	"yatube/internal/handler"
	"yatube/internal/middleware"
	"yatube/internal/pkg"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TokenStore 装配用的完整登录态存储：门卫要读和续期，用户服务要写和注销
type TokenStore interface {
	middleware.TokenStore
	service.SessionStore
}

// Options 路由装配参数，缓存和登录态存储显式注入，测试可替换为内存实现
type Options struct {
	DB       *gorm.DB
	Cache    pkg.PageCache
	Tokens   TokenStore
	Verifier service.CodeVerifier
	SMTP     pkg.SMTPConfig
	PageSize int
	CacheTTL time.Duration
}

func InitRouter(opts Options) *gin.Engine {
	r := gin.Default()

	feed := handler.NewFeedHandler(service.NewFeedService(opts.DB, opts.PageSize))
	post := handler.NewPostHandler(service.NewPostService(opts.DB))
	comment := handler.NewCommentHandler(service.NewCommentService(opts.DB))
	follow := handler.NewFollowHandler(service.NewFollowService(opts.DB))
	group := handler.NewGroupHandler(service.NewGroupService(opts.DB))
	user := handler.NewUserHandler(service.NewUserService(opts.DB, opts.Tokens, opts.Verifier))
	email := handler.NewEmailHandler(service.NewEmailService(opts.SMTP))
	cache := handler.NewCacheHandler(opts.Cache)

	requireAuth := middleware.RequireAuth(opts.Tokens)
	optionalAuth := middleware.OptionalAuth(opts.Tokens)

	api := r.Group("/api")

	// 邮件相关接口
	api.POST("/email/:scope/code", email.SendCode)

	// 用户相关接口
	userGroup := api.Group("/users")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/logout", requireAuth, user.Logout)
	}
	api.POST("/tokens/refresh", user.TokenRefresh)

	// 信息流，全局流外层套整页缓存
	api.GET("/posts", middleware.PageCache(opts.Cache, opts.CacheTTL), feed.Index)
	api.GET("/follow/posts", requireAuth, feed.FollowIndex)
	api.GET("/profiles/:username", optionalAuth, feed.Profile)

	// 帖子
	postGroup := api.Group("/posts")
	{
		postGroup.POST("", requireAuth, post.Create)
		postGroup.GET("/:id", post.Detail)
		postGroup.POST("/:id", requireAuth, post.Edit)
		postGroup.POST("/:id/comments", requireAuth, comment.Create)
	}

	// 分组
	groupGroup := api.Group("/groups")
	{
		groupGroup.POST("", requireAuth, group.Create)
		groupGroup.GET("", group.List)
		groupGroup.GET("/:slug/posts", feed.GroupPosts)
	}

	// 关注
	api.POST("/profiles/:username/follow", requireAuth, follow.Follow)
	api.POST("/profiles/:username/unfollow", requireAuth, follow.Unfollow)

	// 缓存管理
	api.POST("/cache/clear", requireAuth, cache.Clear)

	return r
}
