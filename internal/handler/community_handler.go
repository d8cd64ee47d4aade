package handler

import (
	"net/http"
	"strconv"

	"Tech_Circulo/internal/middleware"
	"Tech_Circulo/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc       *service.CommunityService
	memberSvc *service.MembershipService
}

type CommunityCreateReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type AnnouncementCreateReq struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

func NewCommunityHandler(svc *service.CommunityService, memberSvc *service.MembershipService) *CommunityHandler {
	return &CommunityHandler{svc: svc, memberSvc: memberSvc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)

	var req CommunityCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	community, err := h.svc.CreateCommunity(uid.(uint64), req.Name, req.Description, req.ImageURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           community.ID,
		"name":         community.Name,
		"description":  community.Description,
		"image_url":    community.ImageURL,
		"member_count": community.MemberCount,
	})
}

func (h *CommunityHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	community, err := h.svc.GetCommunity(id)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))

	list, err := h.svc.ListCommunities(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *CommunityHandler) Search(c *gin.Context) {
	list, err := h.svc.SearchCommunities(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// Join 加入社区，返回重算后的成员数
func (h *CommunityHandler) Join(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	count, err := h.memberSvc.Join(c.Request.Context(), uid.(uint64), communityID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member_count": count})
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	count, err := h.memberSvc.Leave(c.Request.Context(), uid.(uint64), communityID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"member_count": count})
}

func (h *CommunityHandler) Members(c *gin.Context) {
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.memberSvc.ListMembers(c.Request.Context(), communityID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

// Joined 当前用户加入的社区，最近加入的在前
func (h *CommunityHandler) Joined(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)

	list, err := h.memberSvc.ListMemberships(c.Request.Context(), uid.(uint64))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}

func (h *CommunityHandler) CreateAnnouncement(c *gin.Context) {
	uid, _ := c.Get(middleware.ContextUserIDKey)
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	var req AnnouncementCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	a, err := h.svc.CreateAnnouncement(c.Request.Context(), uid.(uint64), communityID, req.Title, req.Content, req.Type)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": a.ID})
}

func (h *CommunityHandler) ListAnnouncements(c *gin.Context) {
	communityID, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	list, err := h.svc.ListAnnouncements(communityID)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list})
}
