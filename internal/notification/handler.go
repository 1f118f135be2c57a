package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uniteam/uniteam-backend/middleware"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// 🔔 In-app notifications
// ===============================

func (h *Handler) List(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	userID := session.UserID
	// Admins may inspect another user's feed
	if userParam := c.Query("user_id"); userParam != "" && session.IsAdmin {
		if id, err := strconv.ParseUint(userParam, 10, 32); err == nil {
			userID = uint(id)
		}
	}

	notifications, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

type createReq struct {
	UserID  uint   `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.service.Notify(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create notification"})
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (h *Handler) Delete(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id), session.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

func (h *Handler) Clear(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.service.ClearByUser(c.Request.Context(), session.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notifications cleared"})
}

// ===============================
// 📡 Status feed (expiring)
// ===============================

func (h *Handler) Feed(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	entries, err := h.service.ListStatusFeed(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch status feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) ClearFeed(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.service.ClearStatusFeed(c.Request.Context(), session.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear status feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status feed cleared"})
}
