package handler

import (
	"net/http"
	"strconv"

	"Tech_Circulo/internal/middleware"
	"Tech_Circulo/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	Content string `json:"content" binding:"required"`
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) Create(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.CreateComment(c.Request.Context(), uid.(uint64), pid, req.Content)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": comment.ID})
}

func (h *CommentHandler) ListByPost(c *gin.Context) {
	pid, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.ListByPost(c.Request.Context(), pid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
