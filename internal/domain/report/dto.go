package report

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

// MonthlySummary counts one person's records by status over a month.
// TotalDays counts records that exist, not calendar business days; a
// record stored with status absent still increments it.
type MonthlySummary struct {
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	HalfDay    int     `json:"halfDay"`
	TotalHours float64 `json:"totalHours"`
	TotalDays  int     `json:"totalDays"`
}

// TeamSummary extends MonthlySummary across the whole organization.
// DepartmentWise maps department -> status -> record count.
type TeamSummary struct {
	MonthlySummary
	TotalEmployees int                       `json:"totalEmployees"`
	DepartmentWise map[string]map[string]int `json:"departmentWise"`
}

// TodayDetail is one person's row in the daily snapshot.
type TodayDetail struct {
	User         attendance.PersonSummary `json:"user"`
	CheckInTime  *time.Time               `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time               `json:"checkOutTime,omitempty"`
	Status       attendance.Status        `json:"status"`
}

// TodayStatus is the organization-wide snapshot for one day. Absent is
// derived by subtracting checked-in people from the full headcount, so
// people with no record at all are implicitly absent.
type TodayStatus struct {
	Present    int           `json:"present"`
	Absent     int           `json:"absent"`
	Late       int           `json:"late"`
	Total      int           `json:"total"`
	Attendance []TodayDetail `json:"attendance"`
}

// TrendPoint is one day in the weekly trend, oldest first.
type TrendPoint struct {
	Date    string `json:"date"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// TodayCount is the headline counter block on the manager dashboard.
type TodayCount struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Total   int `json:"total"`
}

// DepartmentPresence breaks today's attendance down per department.
type DepartmentPresence struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

type ManagerDashboard struct {
	TotalEmployees  int                           `json:"totalEmployees"`
	TodayAttendance TodayCount                    `json:"todayAttendance"`
	AbsentEmployees []attendance.PersonSummary    `json:"absentEmployees"`
	WeeklyTrend     []TrendPoint                  `json:"weeklyTrend"`
	DepartmentWise  map[string]DepartmentPresence `json:"departmentWise"`
}

type EmployeeDashboard struct {
	TodayStatus      attendance.TodayStatusResponse `json:"todayStatus"`
	MonthlySummary   MonthlySummary                 `json:"monthlySummary"`
	RecentAttendance []attendance.RecordResponse    `json:"recentAttendance"`
}
