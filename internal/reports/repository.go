package reports

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetEventRows(ctx context.Context, filter ReportFilter) ([]EventReportRow, error)
	GetRoomUsage(ctx context.Context, filter ReportFilter) ([]RoomUsageRow, error)
	GetAuditLogRows(ctx context.Context, filter ReportFilter) ([]AuditLogReportRow, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetEventRows(ctx context.Context, filter ReportFilter) ([]EventReportRow, error) {
	var rows []EventReportRow

	query := r.db.WithContext(ctx).
		Table("events e").
		Select(`
			e.id, e.name, e.host_name, e.date_start, e.date_end,
			g.name as group_name,
			r.name as room_name,
			s.name as status_name
		`).
		Joins("LEFT JOIN groups g ON e.group_id = g.id").
		Joins("LEFT JOIN rooms r ON e.room_id = r.id").
		Joins("LEFT JOIN status s ON e.status_id = s.id")

	query = applyWindow(query, filter, "e")
	if filter.GroupID != nil {
		query = query.Where("e.group_id = ?", *filter.GroupID)
	}

	err := query.Order("e.date_start ASC").Scan(&rows).Error
	return rows, err
}

func (r *repository) GetRoomUsage(ctx context.Context, filter ReportFilter) ([]RoomUsageRow, error) {
	var rows []RoomUsageRow

	query := r.db.WithContext(ctx).
		Table("events e").
		Select(`
			e.room_id,
			r.name as room_name,
			COUNT(*) as event_count,
			COALESCE(SUM(EXTRACT(EPOCH FROM (e.date_end - e.date_start)) / 3600), 0) as total_hours
		`).
		Joins("LEFT JOIN rooms r ON e.room_id = r.id").
		Group("e.room_id, r.name")

	query = applyWindow(query, filter, "e")
	if filter.GroupID != nil {
		query = query.Where("e.group_id = ?", *filter.GroupID)
	}

	err := query.Order("event_count DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) GetAuditLogRows(ctx context.Context, filter ReportFilter) ([]AuditLogReportRow, error) {
	var rows []AuditLogReportRow

	query := r.db.WithContext(ctx).
		Table("audit_logs al").
		Select(`
			al.id, al.user_id, al.action, al.status, al.ip_address,
			al.created_at as timestamp, al.details,
			u.first_name || ' ' || u.last_name as user_name
		`).
		Joins("LEFT JOIN users u ON al.user_id = u.id")

	if filter.From != nil {
		query = query.Where("al.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("al.created_at <= ?", *filter.To)
	}

	err := query.Order("al.created_at DESC").Scan(&rows).Error
	return rows, err
}

func applyWindow(query *gorm.DB, filter ReportFilter, alias string) *gorm.DB {
	if filter.From != nil {
		query = query.Where(alias+".date_end >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(alias+".date_start <= ?", *filter.To)
	}
	return query
}
