package participant

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

type createReq struct {
	EventID uint `json:"eventId" binding:"required"`
	UserID  uint `json:"userId" binding:"required"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Add(req.EventID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add participant"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) List(c *gin.Context) {
	if eventParam := c.Query("event_id"); eventParam != "" {
		eventID, err := strconv.ParseUint(eventParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event_id"})
			return
		}
		links, err := h.service.ListByEvent(uint(eventID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch participants"})
			return
		}
		c.JSON(http.StatusOK, links)
		return
	}

	if userParam := c.Query("user_id"); userParam != "" {
		userID, err := strconv.ParseUint(userParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		links, err := h.service.ListByUser(uint(userID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch participants"})
			return
		}
		c.JSON(http.StatusOK, links)
		return
	}

	links, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch participants"})
		return
	}
	c.JSON(http.StatusOK, links)
}
