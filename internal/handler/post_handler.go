package handler

import (
	"errors"
	"net/http"
	"strconv"

	"yatube/internal/middleware"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type PostReq struct {
	Text    string  `json:"text"`
	GroupID *uint64 `json:"group_id"`
	Image   string  `json:"image"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create 发帖接口
func (h *PostHandler) Create(c *gin.Context) {
	userID := middleware.UserIDFromCtx(c)

	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(userID, req.Text, req.GroupID, req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

// Edit 编辑接口。非作者不报错，静默 302 回全局流（沿用原有策略）
func (h *PostHandler) Edit(c *gin.Context) {
	userID := middleware.UserIDFromCtx(c)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}

	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.EditPost(userID, postID, req.Text, req.GroupID, req.Image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		case errors.Is(err, service.ErrNotAuthor):
			c.Redirect(http.StatusFound, "/api/posts")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

// Detail 单帖页：帖子 + 评论 + 作者统计
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}

	detail, err := h.svc.GetDetail(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "detail failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}
