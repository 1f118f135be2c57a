package reports

import "time"

// Report types
const (
	ReportTypeEvents    = "events"
	ReportTypeRoomUsage = "room_usage"
	ReportTypeAuditLogs = "audit_logs"
)

// Export formats
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// EventReportRow is one event line in the events report.
type EventReportRow struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	HostName   string    `json:"host_name"`
	GroupName  string    `json:"group_name"`
	RoomName   string    `json:"room_name"`
	StatusName string    `json:"status_name"`
	DateStart  time.Time `json:"date_start"`
	DateEnd    time.Time `json:"date_end"`
}

// RoomUsageRow aggregates bookings per room.
type RoomUsageRow struct {
	RoomID     uint    `json:"room_id"`
	RoomName   string  `json:"room_name"`
	EventCount int64   `json:"event_count"`
	TotalHours float64 `json:"total_hours"`
}

// AuditLogReportRow is one audit entry line in the audit report.
type AuditLogReportRow struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ip_address"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// ReportData carries whichever rows the requested report needs.
type ReportData struct {
	Events    []EventReportRow
	RoomUsage []RoomUsageRow
	AuditLogs []AuditLogReportRow
}

// ReportFilter narrows a report to a time window or group.
type ReportFilter struct {
	From    *time.Time
	To      *time.Time
	GroupID *uint
}
