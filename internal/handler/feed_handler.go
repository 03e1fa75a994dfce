package handler

import (
	"errors"
	"net/http"
	"strconv"

	"yatube/internal/middleware"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// pageParam 页码参数，缺省或非法时回到第 1 页，越界由分页器收敛
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// Index 全局信息流（外层套整页缓存）
func (h *FeedHandler) Index(c *gin.Context) {
	page, err := h.svc.GlobalFeed(pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GroupPosts 分组信息流
func (h *FeedHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")
	group, page, err := h.svc.GroupFeed(slug, pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": group, "page": page})
}

// Profile 个人主页
func (h *FeedHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	viewerID := middleware.UserIDFromCtx(c)

	profile, err := h.svc.GetProfile(c.Request.Context(), username, viewerID, pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "profile failed"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// FollowIndex 关注流，仅登录用户
func (h *FeedHandler) FollowIndex(c *gin.Context) {
	viewerID := middleware.UserIDFromCtx(c)
	page, err := h.svc.FollowFeed(viewerID, pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, page)
}
