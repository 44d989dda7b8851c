package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

// fakeQueries serves canned record sets: org-wide records keyed by start
// date, personal history, and personal recent records.
type fakeQueries struct {
	byDay   map[string][]attendance.RecordWithPersonResponse
	history []attendance.RecordResponse
	recent  []attendance.RecordWithPersonResponse
}

func (f *fakeQueries) History(_ context.Context, _ string, _ attendance.HistoryFilter) ([]attendance.RecordResponse, error) {
	return f.history, nil
}

func (f *fakeQueries) Filtered(_ context.Context, filter attendance.Filter) ([]attendance.RecordWithPersonResponse, error) {
	if filter.EmployeeCode != nil {
		return f.recent, nil
	}
	if filter.StartDate != nil {
		return f.byDay[*filter.StartDate], nil
	}
	return nil, nil
}

type fakeAttendanceService struct {
	today attendance.TodayStatusResponse
}

func (f *fakeAttendanceService) CheckIn(_ context.Context, _ string) (attendance.CheckInResponse, error) {
	return attendance.CheckInResponse{}, nil
}

func (f *fakeAttendanceService) CheckOut(_ context.Context, _ string) (attendance.CheckOutResponse, error) {
	return attendance.CheckOutResponse{}, nil
}

func (f *fakeAttendanceService) TodayStatus(_ context.Context, _ string) (attendance.TodayStatusResponse, error) {
	return f.today, nil
}

type staticDirectory struct {
	employees []person.Person
}

func (s *staticDirectory) Create(_ context.Context, p person.Person) (person.Person, error) {
	return p, nil
}

func (s *staticDirectory) GetByID(_ context.Context, id string) (person.Person, error) {
	for _, p := range s.employees {
		if p.ID == id {
			return p, nil
		}
	}
	return person.Person{}, person.ErrPersonNotFound
}

func (s *staticDirectory) GetByEmail(_ context.Context, _ string) (person.Person, error) {
	return person.Person{}, person.ErrPersonNotFound
}

func (s *staticDirectory) GetByEmployeeCode(_ context.Context, _ string) (person.Person, error) {
	return person.Person{}, person.ErrPersonNotFound
}

func (s *staticDirectory) ListByRole(_ context.Context, _ person.Role) ([]person.Person, error) {
	return s.employees, nil
}

func (s *staticDirectory) CountByRole(_ context.Context, _ person.Role) (int64, error) {
	return int64(len(s.employees)), nil
}

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testEmployees() []person.Person {
	return []person.Person{
		{ID: "alice", Name: "Alice", Email: "alice@example.com", EmployeeCode: "EMP001", Department: "Engineering", Role: person.RoleEmployee},
		{ID: "bob", Name: "Bob", Email: "bob@example.com", EmployeeCode: "EMP002", Department: "Engineering", Role: person.RoleEmployee},
		{ID: "carol", Name: "Carol", Email: "carol@example.com", EmployeeCode: "EMP003", Department: "Sales", Role: person.RoleEmployee},
	}
}

func TestManagerDashboard(t *testing.T) {
	queries := &fakeQueries{
		byDay: map[string][]attendance.RecordWithPersonResponse{
			"2025-03-10": {
				personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 8),
				personRecord("bob", "Bob", "Engineering", attendance.StatusLate, true, 7),
			},
		},
	}
	svc := NewReportService(queries, &fakeAttendanceService{}, &staticDirectory{employees: testEmployees()}, clock.Fixed(testNow), time.UTC)

	dashboard, err := svc.ManagerDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalEmployees)
	assert.Equal(t, 2, dashboard.TodayAttendance.Present)
	assert.Equal(t, 1, dashboard.TodayAttendance.Late)
	assert.Equal(t, 1, dashboard.TodayAttendance.Absent)
	assert.Equal(t, 3, dashboard.TodayAttendance.Total)

	require.Len(t, dashboard.AbsentEmployees, 1)
	assert.Equal(t, "carol", dashboard.AbsentEmployees[0].ID)

	require.Len(t, dashboard.WeeklyTrend, 7)
	assert.Equal(t, "2025-03-04", dashboard.WeeklyTrend[0].Date)
	assert.Equal(t, "2025-03-10", dashboard.WeeklyTrend[6].Date)
	assert.Equal(t, 2, dashboard.WeeklyTrend[6].Present)
	assert.Equal(t, 1, dashboard.WeeklyTrend[6].Late)
	// days with no records count the full headcount as absent
	assert.Equal(t, 3, dashboard.WeeklyTrend[0].Absent)

	engineering := dashboard.DepartmentWise["Engineering"]
	assert.Equal(t, 2, engineering.Total)
	assert.Equal(t, 2, engineering.Present)
	assert.Equal(t, 0, engineering.Absent)

	sales := dashboard.DepartmentWise["Sales"]
	assert.Equal(t, 1, sales.Total)
	assert.Equal(t, 0, sales.Present)
	assert.Equal(t, 1, sales.Absent)
}

func TestTodayStatusAgainstHeadcount(t *testing.T) {
	queries := &fakeQueries{
		byDay: map[string][]attendance.RecordWithPersonResponse{
			"2025-03-10": {
				personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 0),
			},
		},
	}
	svc := NewReportService(queries, &fakeAttendanceService{}, &staticDirectory{employees: testEmployees()}, clock.Fixed(testNow), time.UTC)

	status, err := svc.TodayStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, status.Present)
	assert.Equal(t, 2, status.Absent)
	assert.Equal(t, 3, status.Total)
}

func TestPersonalMonthlySummary(t *testing.T) {
	queries := &fakeQueries{
		history: []attendance.RecordResponse{
			{Status: attendance.StatusPresent, TotalHours: 8},
			{Status: attendance.StatusPresent, TotalHours: 8},
			{Status: attendance.StatusLate, TotalHours: 6.5},
		},
	}
	svc := NewReportService(queries, &fakeAttendanceService{}, &staticDirectory{}, clock.Fixed(testNow), time.UTC)

	summary, err := svc.PersonalMonthlySummary(context.Background(), "alice", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 22.5, summary.TotalHours)
	assert.Equal(t, 3, summary.TotalDays)
}

func TestEmployeeDashboard(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	queries := &fakeQueries{
		history: []attendance.RecordResponse{
			{Status: attendance.StatusPresent, TotalHours: 8},
		},
		recent: []attendance.RecordWithPersonResponse{
			personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 8),
		},
	}
	attendanceSvc := &fakeAttendanceService{
		today: attendance.TodayStatusResponse{
			CheckedIn:   true,
			CheckInTime: &checkIn,
			Status:      string(attendance.StatusPresent),
		},
	}
	svc := NewReportService(queries, attendanceSvc, &staticDirectory{employees: testEmployees()}, clock.Fixed(testNow), time.UTC)

	dashboard, err := svc.EmployeeDashboard(context.Background(), "alice")
	require.NoError(t, err)

	assert.True(t, dashboard.TodayStatus.CheckedIn)
	assert.Equal(t, 1, dashboard.MonthlySummary.Present)
	require.Len(t, dashboard.RecentAttendance, 1)
	assert.Equal(t, attendance.StatusPresent, dashboard.RecentAttendance[0].Status)
}

func TestExportCSV(t *testing.T) {
	queries := &fakeQueries{
		byDay: map[string][]attendance.RecordWithPersonResponse{
			"2025-03-10": {
				personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 8),
			},
		},
	}
	svc := NewReportService(queries, &fakeAttendanceService{}, &staticDirectory{}, clock.Fixed(testNow), time.UTC)

	day := "2025-03-10"
	data, err := svc.ExportCSV(context.Background(), attendance.Filter{StartDate: &day})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Employee ID,Name,Email,Department")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Engineering")
	assert.Contains(t, text, "2025-03-10")
	assert.Contains(t, text, "8.00")
}
