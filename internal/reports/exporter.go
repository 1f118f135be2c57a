package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ReportExporter defines the interface for exporting reports in different formats
type ReportExporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type reportExporter struct{}

func NewReportExporter() ReportExporter {
	return &reportExporter{}
}

func (e *reportExporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeEvents:
		return e.exportEventsByFormat(format, timestamp, data.Events)
	case ReportTypeRoomUsage:
		return e.exportRoomUsageByFormat(format, timestamp, data.RoomUsage)
	case ReportTypeAuditLogs:
		return e.exportAuditLogsByFormat(format, timestamp, data.AuditLogs)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

//// ============================
/// EVENTS EXPORTS
//// ============================

func (e *reportExporter) exportEventsByFormat(format, timestamp string, events []EventReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		data, err := e.exportEventsExcel(events)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportEventsCSV(events)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.csv", timestamp), "text/csv", nil

	case FormatPDF:
		data, err := e.exportEventsPDF(events)
		if err != nil {
			return nil, "", "", err
		}
		return data, fmt.Sprintf("events_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for events: %s", format)
	}
}

func (e *reportExporter) exportEventsCSV(events []EventReportRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	headers := []string{"id", "name", "host", "group", "room", "status", "date_start", "date_end"}
	if err := w.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range events {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Name,
			r.HostName,
			r.GroupName,
			r.RoomName,
			r.StatusName,
			r.DateStart.Format("2006-01-02 15:04"),
			r.DateEnd.Format("2006-01-02 15:04"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsExcel(events []EventReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Events"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"id", "name", "host", "group", "room", "status", "date_start", "date_end"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, r := range events {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.HostName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.GroupName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.RoomName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.StatusName)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.DateStart.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.DateEnd.Format("2006-01-02 15:04"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *reportExporter) exportEventsPDF(events []EventReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Events Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"ID", "Name", "Host", "Group", "Room", "Status", "Start", "End"}
	widths := []float64{15, 60, 40, 30, 30, 25, 38, 38}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range events {
		pdf.CellFormat(widths[0], 6, fmt.Sprint(r.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.HostName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.GroupName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.RoomName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 6, r.StatusName, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 6, r.DateStart.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, r.DateEnd.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// ROOM USAGE EXPORTS
//// ============================

func (e *reportExporter) exportRoomUsageByFormat(format, timestamp string, rows []RoomUsageRow) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		f := excelize.NewFile()
		sheet := "Room Usage"
		index, err := f.NewSheet(sheet)
		if err != nil {
			return nil, "", "", err
		}
		f.DeleteSheet("Sheet1")
		f.SetActiveSheet(index)

		headers := []string{"room_id", "room", "events", "total_hours"}
		for i, h := range headers {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return nil, "", "", err
			}
			f.SetCellValue(sheet, cell, h)
		}
		for rIdx, r := range rows {
			row := rIdx + 2
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.RoomID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.RoomName)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.EventCount)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.TotalHours)
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("room_usage_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{"room_id", "room", "events", "total_hours"}); err != nil {
			return nil, "", "", err
		}
		for _, r := range rows {
			record := []string{
				strconv.FormatUint(uint64(r.RoomID), 10),
				r.RoomName,
				strconv.FormatInt(r.EventCount, 10),
				fmt.Sprintf("%.1f", r.TotalHours),
			}
			if err := w.Write(record); err != nil {
				return nil, "", "", err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("room_usage_report_%s.csv", timestamp), "text/csv", nil

	case FormatPDF:
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Room Usage Report")
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 10)
		headers := []string{"Room ID", "Room", "Events", "Total Hours"}
		widths := []float64{25, 85, 30, 40}
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, r := range rows {
			pdf.CellFormat(widths[0], 6, fmt.Sprint(r.RoomID), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[1], 6, r.RoomName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 6, fmt.Sprint(r.EventCount), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", r.TotalHours), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("room_usage_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for room usage: %s", format)
	}
}

//// ============================
/// AUDIT LOGS EXPORTS
//// ============================

func (e *reportExporter) exportAuditLogsByFormat(format, timestamp string, logs []AuditLogReportRow) ([]byte, string, string, error) {
	switch format {
	case FormatCSV:
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		headers := []string{"id", "user_id", "user", "action", "status", "ip", "timestamp", "details"}
		if err := w.Write(headers); err != nil {
			return nil, "", "", err
		}
		for _, log := range logs {
			userID := ""
			if log.UserID != nil {
				userID = strconv.FormatUint(uint64(*log.UserID), 10)
			}
			record := []string{
				strconv.FormatUint(uint64(log.ID), 10),
				userID,
				log.UserName,
				log.Action,
				log.Status,
				log.IPAddress,
				log.Timestamp.Format("2006-01-02 15:04:05"),
				log.Details,
			}
			if err := w.Write(record); err != nil {
				return nil, "", "", err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("audit_logs_report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		f := excelize.NewFile()
		sheet := "Audit Logs"
		index, err := f.NewSheet(sheet)
		if err != nil {
			return nil, "", "", err
		}
		f.DeleteSheet("Sheet1")
		f.SetActiveSheet(index)

		headers := []string{"id", "user_id", "user", "action", "status", "ip", "timestamp", "details"}
		for i, h := range headers {
			cell, err := excelize.CoordinatesToCellName(i+1, 1)
			if err != nil {
				return nil, "", "", err
			}
			f.SetCellValue(sheet, cell, h)
		}
		for rIdx, log := range logs {
			row := rIdx + 2
			userID := ""
			if log.UserID != nil {
				userID = strconv.FormatUint(uint64(*log.UserID), 10)
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), log.ID)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), userID)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), log.UserName)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), log.Action)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), log.Status)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), log.IPAddress)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), log.Timestamp.Format("2006-01-02 15:04:05"))
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), log.Details)
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("audit_logs_report_%s.xlsx", timestamp),
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		pdf := gofpdf.New("L", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 10, "Audit Logs Report")
		pdf.Ln(10)

		pdf.SetFont("Arial", "B", 9)
		headers := []string{"ID", "User", "Action", "Status", "IP", "Timestamp"}
		widths := []float64{15, 50, 60, 25, 40, 45}
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		for _, log := range logs {
			pdf.CellFormat(widths[0], 6, fmt.Sprint(log.ID), "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[1], 6, log.UserName, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[2], 6, log.Action, "1", 0, "L", false, 0, "")
			pdf.CellFormat(widths[3], 6, log.Status, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[4], 6, log.IPAddress, "1", 0, "C", false, 0, "")
			pdf.CellFormat(widths[5], 6, log.Timestamp.Format("2006-01-02 15:04:05"), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, "", "", err
		}
		return buf.Bytes(), fmt.Sprintf("audit_logs_report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for audit logs: %s", format)
	}
}
