package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

var exportHeader = []string{
	"Employee ID", "Name", "Email", "Department",
	"Date", "Check In", "Check Out", "Status", "Total Hours",
}

// ExportCSV implements report.Service. Rows come back in the query
// service's order, newest first.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, filter attendance.Filter) ([]byte, error) {
	records, err := s.queries.Filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		checkIn := ""
		if rec.CheckInTime != nil {
			checkIn = rec.CheckInTime.In(s.loc).Format("15:04:05")
		}
		checkOut := ""
		if rec.CheckOutTime != nil {
			checkOut = rec.CheckOutTime.In(s.loc).Format("15:04:05")
		}

		row := []string{
			rec.User.EmployeeCode,
			rec.User.Name,
			rec.User.Email,
			rec.User.Department,
			rec.Date.Format("2006-01-02"),
			checkIn,
			checkOut,
			string(rec.Status),
			strconv.FormatFloat(rec.TotalHours, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
