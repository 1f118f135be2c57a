package event

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniteam/uniteam-backend/middleware"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 🎯 Create Event - POST /events
func (h *Handler) CreateEvent(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), session, &req, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ===========================
// 📄 List Events - GET /events
func (h *Handler) ListEvents(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// With page or limit set the response is a paged envelope, otherwise
	// the full filtered list for callers that render everything at once.
	if c.Query("page") != "" || c.Query("limit") != "" {
		page, limit, err := parsePaging(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		paged, err := h.Service.ListEventsPaged(session, filters, page, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
			return
		}
		c.JSON(http.StatusOK, paged)
		return
	}

	events, err := h.Service.ListEvents(session, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

func parsePaging(c *gin.Context) (int, int, error) {
	page, limit := 1, 0
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errInvalidFilter("page")
		}
		page = p
	}
	if v := c.Query("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, errInvalidFilter("limit")
		}
		limit = l
	}
	return page, limit, nil
}

func parseFilters(c *gin.Context) (Filters, error) {
	var f Filters

	if v := c.Query("group_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, errInvalidFilter("group_id")
		}
		gid := uint(id)
		f.GroupID = &gid
	}
	if v := c.Query("status_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, errInvalidFilter("status_id")
		}
		sid := uint(id)
		f.StatusID = &sid
	}
	if v := c.Query("room_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return f, errInvalidFilter("room_id")
		}
		rid := uint(id)
		f.RoomID = &rid
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errInvalidFilter("from")
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errInvalidFilter("to")
		}
		f.To = &t
	}

	return f, nil
}

func errInvalidFilter(name string) error { return errors.New("invalid " + name + " filter") }

// ===========================
// 📊 Stats - GET /events/stats (admin)
func (h *Handler) Stats(c *gin.Context) {
	counts, err := h.Service.CountByStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute event stats"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

// ===========================
// 🔍 Get Event - GET /events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.Service.GetEvent(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// ===========================
// ✅ Update Status - PATCH /events/:id/status (admin)
func (h *Handler) UpdateStatus(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	event, err := h.Service.UpdateStatus(c.Request.Context(), session, uint(id), req.StatusID, middleware.GetIPFromContext(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// ===========================
// 🗑 Delete Event - DELETE /events/:id
func (h *Handler) DeleteEvent(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.Service.DeleteEvent(c.Request.Context(), session, uint(id), middleware.GetIPFromContext(c)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// ===========================
// 📅 ICS download - GET /events/:id/ics
func (h *Handler) DownloadICS(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.Service.GetEvent(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	roomName := ""
	if room, err := h.Service.RoomSvc.GetByID(event.RoomID); err == nil {
		roomName = room.Name
	}

	c.Header("Content-Disposition", `attachment; filename="event.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(BuildICS(event, roomName)))
}

// ===========================
// 🔗 Calendar links - GET /events/:id/calendar-links
func (h *Handler) GetCalendarLinks(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.Service.GetEvent(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	roomName := ""
	if room, err := h.Service.RoomSvc.GetByID(event.RoomID); err == nil {
		roomName = room.Name
	}

	c.JSON(http.StatusOK, BuildCalendarLinks(event, roomName))
}
