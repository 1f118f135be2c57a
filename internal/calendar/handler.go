package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniteam/uniteam-backend/internal/event"
	"github.com/uniteam/uniteam-backend/middleware"
)

type Handler struct {
	EventRepo event.Repository
}

func NewHandler(eventRepo event.Repository) *Handler {
	return &Handler{EventRepo: eventRepo}
}

// dayEvents maps a day number to the events touching it.
type monthResponse struct {
	MonthGrid
	Events map[int][]event.Event `json:"events"`
}

// ===========================
// 📅 Month view - GET /calendar/:year/:month
//
// Returns the Monday-first grid plus the month's events bucketed per day.
// Members see their own group and no rejected or cancelled bookings.
func (h *Handler) GetMonth(c *gin.Context) {
	session, err := middleware.GetSession(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}
	month := time.Month(monthNum)

	var groupID *uint
	if gidParam := c.Query("group_id"); gidParam != "" {
		id, err := strconv.ParseUint(gidParam, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group_id"})
			return
		}
		gid := uint(id)
		groupID = &gid
	} else if !session.IsAdmin {
		gid := session.GroupID
		groupID = &gid
	}

	from, to := MonthBounds(year, month)
	events, err := h.EventRepo.ListEventsBetween(from, to, groupID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}
	if !session.IsAdmin {
		events = event.MemberVisible(events)
	}

	grid := BuildMonthGrid(year, month)
	byDay := make(map[int][]event.Event)
	for _, e := range events {
		for d := 1; d <= grid.Days; d++ {
			dayStart := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
			dayEnd := dayStart.AddDate(0, 0, 1)
			if e.DateStart.Before(dayEnd) && e.DateEnd.After(dayStart) {
				byDay[d] = append(byDay[d], e)
			}
		}
	}

	c.JSON(http.StatusOK, monthResponse{MonthGrid: grid, Events: byDay})
}
