package reports

import (
	"context"
	"fmt"
)

type Service interface {
	Generate(ctx context.Context, reportType, format string, filter ReportFilter) ([]byte, string, string, error)
}

type service struct {
	repo     Repository
	exporter ReportExporter
}

func NewService(repo Repository) Service {
	return &service{repo: repo, exporter: NewReportExporter()}
}

// Generate loads the rows for the requested report and renders them in
// the requested format, returning content, filename and MIME type.
func (s *service) Generate(ctx context.Context, reportType, format string, filter ReportFilter) ([]byte, string, string, error) {
	var data ReportData

	switch reportType {
	case ReportTypeEvents:
		rows, err := s.repo.GetEventRows(ctx, filter)
		if err != nil {
			return nil, "", "", err
		}
		data.Events = rows

	case ReportTypeRoomUsage:
		rows, err := s.repo.GetRoomUsage(ctx, filter)
		if err != nil {
			return nil, "", "", err
		}
		data.RoomUsage = rows

	case ReportTypeAuditLogs:
		rows, err := s.repo.GetAuditLogRows(ctx, filter)
		if err != nil {
			return nil, "", "", err
		}
		data.AuditLogs = rows

	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}

	return s.exporter.Export(reportType, format, data)
}
