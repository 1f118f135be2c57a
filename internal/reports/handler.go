package reports

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===========================
// 📊 Export report - GET /reports/:type
//
// Query params: format (csv|excel|pdf), from, to (YYYY-MM-DD), group_id.
func (h *Handler) Export(c *gin.Context) {
	reportType := c.Param("type")
	format := c.DefaultQuery("format", FormatCSV)

	var filter ReportFilter

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from format. Use YYYY-MM-DD"})
			return
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to format. Use YYYY-MM-DD"})
			return
		}
		endOfDay := to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		filter.To = &endOfDay
	}
	if gidStr := c.Query("group_id"); gidStr != "" {
		gid, err := strconv.ParseUint(gidStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group_id"})
			return
		}
		id := uint(gid)
		filter.GroupID = &id
	}

	content, filename, mimeType, err := h.service.Generate(c.Request.Context(), reportType, format, filter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, mimeType, content)
}
