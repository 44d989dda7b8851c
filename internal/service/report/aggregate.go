package report

import (
	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
)

// The aggregation math lives in pure functions over record sets so it can
// be tested offline. An empty input yields a zeroed summary, never an
// error. Summaries are additive: aggregating two disjoint subsets and
// adding the results field-wise equals aggregating the union.

// Summarize totals one person's records by status.
func Summarize(records []attendance.RecordResponse) report.MonthlySummary {
	var summary report.MonthlySummary

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
		summary.TotalHours += rec.TotalHours
	}

	// Records that exist, not calendar business days.
	summary.TotalDays = len(records)

	return summary
}

// SummarizeTeam totals records across the organization with a
// per-department status breakdown.
func SummarizeTeam(records []attendance.RecordWithPersonResponse) report.TeamSummary {
	summary := report.TeamSummary{
		DepartmentWise: make(map[string]map[string]int),
	}

	seen := make(map[string]struct{})

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
		summary.TotalHours += rec.TotalHours

		seen[rec.User.ID] = struct{}{}

		dept := rec.User.Department
		if dept == "" {
			dept = "General"
		}
		if summary.DepartmentWise[dept] == nil {
			summary.DepartmentWise[dept] = make(map[string]int)
		}
		summary.DepartmentWise[dept][string(rec.Status)]++
	}

	summary.TotalDays = len(records)
	summary.TotalEmployees = len(seen)

	return summary
}

// SummarizeDay snapshots one day against the full headcount. Absent is
// headcount minus checked-in people, so a person with no record at all
// counts as absent.
func SummarizeDay(records []attendance.RecordWithPersonResponse, headcount int) report.TodayStatus {
	status := report.TodayStatus{
		Total:      headcount,
		Attendance: make([]report.TodayDetail, 0, len(records)),
	}

	for _, rec := range records {
		if rec.CheckInTime != nil {
			status.Present++
		}
		if rec.Status == attendance.StatusLate {
			status.Late++
		}
		status.Attendance = append(status.Attendance, report.TodayDetail{
			User:         rec.User,
			CheckInTime:  rec.CheckInTime,
			CheckOutTime: rec.CheckOutTime,
			Status:       rec.Status,
		})
	}

	status.Absent = headcount - status.Present

	return status
}

// checkedInPeople collects the ids of people with a check-in among the
// given records.
func checkedInPeople(records []attendance.RecordWithPersonResponse) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, rec := range records {
		if rec.CheckInTime != nil {
			ids[rec.User.ID] = struct{}{}
		}
	}
	return ids
}
