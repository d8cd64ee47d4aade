package handler

import (
	"net/http"
	"strconv"

	"Tech_Circulo/internal/middleware"
	"Tech_Circulo/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	CommunityID uint64 `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)

	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(c.Request.Context(), uid.(uint64), req.CommunityID, req.Title, req.Content, req.ImageURL)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	post, err := h.svc.GetPost(id)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListByCommunity 帖子列表，优先游标分页，兼容页码
func (h *PostHandler) ListByCommunity(c *gin.Context) {
	communityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || communityID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid community id"})
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))

	// 游标参数（可选）
	lastIDStr := c.Query("last_id")
	lastTSStr := c.Query("last_created_at")
	if lastIDStr != "" || lastTSStr != "" {
		lastID, _ := strconv.ParseUint(lastIDStr, 10, 64)
		lastTS, _ := strconv.ParseInt(lastTSStr, 10, 64)

		list, nextID, nextTS, err := h.svc.ListByCommunityCursor(communityID, lastID, lastTS, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"list":            list,
			"last_id":         nextID,
			"last_created_at": nextTS,
		})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	list, err := h.svc.ListByCommunity(communityID, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// MyPosts 当前用户发过的帖子
func (h *PostHandler) MyPosts(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)

	list, err := h.svc.ListByAuthor(uid.(uint64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

type UpdatePostReq struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// UpdatePost 仅作者可改
func (h *PostHandler) UpdatePost(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req UpdatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.UpdatePost(c.Request.Context(), uid.(uint64), postID, req.Title, req.Content, req.ImageURL)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

// SearchPosts 标题/正文关键词检索
func (h *PostHandler) SearchPosts(c *gin.Context) {
	list, err := h.svc.SearchPosts(c.Query("keyword"))
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	postID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	if err := h.svc.DeletePost(c.Request.Context(), uid.(uint64), postID); err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}
