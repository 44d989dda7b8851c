package report

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// Service derives reports from record sets obtained through the query
// service. It never touches storage directly; the aggregation math itself
// is pure and offline-testable.
type Service interface {
	// PersonalMonthlySummary totals one person's records for a calendar
	// month. Zero month/year defaults to the current month.
	PersonalMonthlySummary(ctx context.Context, personID string, month, year int) (MonthlySummary, error)

	// TeamSummary totals all records for a calendar month across the
	// organization with a per-department breakdown.
	TeamSummary(ctx context.Context, month, year int) (TeamSummary, error)

	// TodayStatus snapshots the whole organization for today.
	TodayStatus(ctx context.Context) (TodayStatus, error)

	// ManagerDashboard composes headcount, today's snapshot, the absent
	// list, the trailing-7-day trend and the department breakdown.
	ManagerDashboard(ctx context.Context) (ManagerDashboard, error)

	// EmployeeDashboard composes one person's today status, current-month
	// summary and recent records.
	EmployeeDashboard(ctx context.Context, personID string) (EmployeeDashboard, error)

	// ExportCSV renders filtered records as CSV for download.
	ExportCSV(ctx context.Context, filter attendance.Filter) ([]byte, error)
}
