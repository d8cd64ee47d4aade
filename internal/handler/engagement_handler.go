package handler

import (
	"net/http"
	"strconv"

	"Tech_Circulo/internal/middleware"
	"Tech_Circulo/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	svc *service.EngagementService
}

type ReportReq struct {
	Reason string `json:"reason" binding:"required,max=200"`
}

func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

// ToggleLike 点赞/取消点赞，返回最新状态和重算后的计数
func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	liked, count, err := h.svc.ToggleLike(c.Request.Context(), pid, uid.(uint64))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "liked": liked, "likes_count": count})
}

func (h *EngagementHandler) ToggleBookmark(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	bookmarked, count, err := h.svc.ToggleBookmark(c.Request.Context(), pid, uid.(uint64))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "bookmarked": bookmarked, "bookmarks_count": count})
}

func (h *EngagementHandler) Report(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": "invalid params"})
		return
	}

	if err := h.svc.Report(c.Request.Context(), pid, uid.(uint64), req.Reason); err != nil {
		c.JSON(httpStatus(err), gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "msg": "ok"})
}

// Stats 帖子的点赞/收藏/举报/评论数快照
func (h *EngagementHandler) Stats(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	stats, err := h.svc.Stats(c.Request.Context(), pid)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "stats": stats})
}

// Status 当前用户对该帖的点赞/收藏状态
func (h *EngagementHandler) Status(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	liked, err := h.svc.IsLiked(c.Request.Context(), pid, uid.(uint64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	bookmarked, err := h.svc.IsBookmarked(c.Request.Context(), pid, uid.(uint64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "liked": liked, "bookmarked": bookmarked})
}

// Bookmarks 当前用户收藏的帖子
func (h *EngagementHandler) Bookmarks(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)

	list, err := h.svc.ListBookmarked(c.Request.Context(), uid.(uint64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 1, "msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "list": list})
}
