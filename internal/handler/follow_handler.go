package handler

import (
	"errors"
	"net/http"

	"yatube/internal/middleware"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow 关注接口。重复关注幂等，changed 表示是否真的新建了关系
func (h *FollowHandler) Follow(c *gin.Context) {
	viewerID := middleware.UserIDFromCtx(c)
	username := c.Param("username")

	changed, err := h.svc.Follow(c.Request.Context(), viewerID, username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
		case errors.Is(err, service.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "follow failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// Unfollow 取消关注接口。关系不存在按 404 处理
func (h *FollowHandler) Unfollow(c *gin.Context) {
	viewerID := middleware.UserIDFromCtx(c)
	username := c.Param("username")

	if err := h.svc.Unfollow(c.Request.Context(), viewerID, username); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotFollowing):
			c.JSON(http.StatusNotFound, gin.H{"msg": "follow not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "unfollow failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
