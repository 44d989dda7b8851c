package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

type ReportServiceImpl struct {
	queries    attendance.QueryService
	attendance attendance.Service
	people     person.Repository
	clock      clock.Clock
	loc        *time.Location
}

func NewReportService(
	queries attendance.QueryService,
	attendanceService attendance.Service,
	people person.Repository,
	clk clock.Clock,
	loc *time.Location,
) report.Service {
	return &ReportServiceImpl{
		queries:    queries,
		attendance: attendanceService,
		people:     people,
		clock:      clk,
		loc:        loc,
	}
}

// PersonalMonthlySummary implements report.Service.
func (s *ReportServiceImpl) PersonalMonthlySummary(ctx context.Context, personID string, month, year int) (report.MonthlySummary, error) {
	if month == 0 || year == 0 {
		now := s.clock.Now().In(s.loc)
		month = int(now.Month())
		year = now.Year()
	}

	records, err := s.queries.History(ctx, personID, attendance.HistoryFilter{
		Month: &month,
		Year:  &year,
	})
	if err != nil {
		return report.MonthlySummary{}, err
	}

	return Summarize(records), nil
}

// TeamSummary implements report.Service.
func (s *ReportServiceImpl) TeamSummary(ctx context.Context, month, year int) (report.TeamSummary, error) {
	if month == 0 || year == 0 {
		now := s.clock.Now().In(s.loc)
		month = int(now.Month())
		year = now.Year()
	}

	from, to := attendance.MonthRange(year, time.Month(month), s.loc)
	start := from.Format("2006-01-02")
	end := to.Format("2006-01-02")

	records, err := s.queries.Filtered(ctx, attendance.Filter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return report.TeamSummary{}, err
	}

	return SummarizeTeam(records), nil
}

// TodayStatus implements report.Service.
func (s *ReportServiceImpl) TodayStatus(ctx context.Context) (report.TodayStatus, error) {
	today := attendance.DayOf(s.clock.Now().In(s.loc), s.loc)

	headcount, err := s.people.CountByRole(ctx, person.RoleEmployee)
	if err != nil {
		return report.TodayStatus{}, fmt.Errorf("failed to count employees: %w", err)
	}

	records, err := s.recordsForDay(ctx, today)
	if err != nil {
		return report.TodayStatus{}, err
	}

	return SummarizeDay(records, int(headcount)), nil
}

// ManagerDashboard implements report.Service. The independent reads fan
// out concurrently; the trend window is the trailing 7 days including
// today, oldest first, measured against today's headcount.
func (s *ReportServiceImpl) ManagerDashboard(ctx context.Context) (report.ManagerDashboard, error) {
	today := attendance.DayOf(s.clock.Now().In(s.loc), s.loc)

	var (
		headcount  int64
		employees  []person.Person
		trendByDay [7][]attendance.RecordWithPersonResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.people.CountByRole(gctx, person.RoleEmployee)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		headcount = count
		return nil
	})

	g.Go(func() error {
		list, err := s.people.ListByRole(gctx, person.RoleEmployee)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees = list
		return nil
	})

	// index 6 is today
	for i := 0; i < 7; i++ {
		i := i
		day := today.AddDate(0, 0, i-6)
		g.Go(func() error {
			records, err := s.recordsForDay(gctx, day)
			if err != nil {
				return err
			}
			trendByDay[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report.ManagerDashboard{}, err
	}

	todayRecords := trendByDay[6]
	todaySummary := SummarizeDay(todayRecords, int(headcount))
	checkedIn := checkedInPeople(todayRecords)

	absentEmployees := make([]attendance.PersonSummary, 0)
	for _, emp := range employees {
		if _, ok := checkedIn[emp.ID]; ok {
			continue
		}
		absentEmployees = append(absentEmployees, attendance.PersonSummary{
			ID:           emp.ID,
			Name:         emp.Name,
			Email:        emp.Email,
			EmployeeCode: emp.EmployeeCode,
			Department:   emp.Department,
		})
	}

	trend := make([]report.TrendPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		point := report.TrendPoint{Date: day.Format("2006-01-02")}
		for _, rec := range trendByDay[i] {
			if rec.CheckInTime != nil {
				point.Present++
			}
			if rec.Status == attendance.StatusLate {
				point.Late++
			}
		}
		point.Absent = int(headcount) - point.Present
		trend = append(trend, point)
	}

	departmentWise := make(map[string]report.DepartmentPresence)
	for _, emp := range employees {
		dept := emp.Department
		if dept == "" {
			dept = person.DefaultDepartment
		}
		presence := departmentWise[dept]
		presence.Total++
		departmentWise[dept] = presence
	}
	for _, rec := range todayRecords {
		if rec.CheckInTime == nil {
			continue
		}
		// records of people outside the employee listing are skipped
		presence, ok := departmentWise[rec.User.Department]
		if !ok {
			continue
		}
		presence.Present++
		departmentWise[rec.User.Department] = presence
	}
	for dept, presence := range departmentWise {
		presence.Absent = presence.Total - presence.Present
		departmentWise[dept] = presence
	}

	return report.ManagerDashboard{
		TotalEmployees: int(headcount),
		TodayAttendance: report.TodayCount{
			Present: todaySummary.Present,
			Absent:  todaySummary.Absent,
			Late:    todaySummary.Late,
			Total:   todaySummary.Total,
		},
		AbsentEmployees: absentEmployees,
		WeeklyTrend:     trend,
		DepartmentWise:  departmentWise,
	}, nil
}

// EmployeeDashboard implements report.Service.
func (s *ReportServiceImpl) EmployeeDashboard(ctx context.Context, personID string) (report.EmployeeDashboard, error) {
	now := s.clock.Now().In(s.loc)
	today := attendance.DayOf(now, s.loc)

	var (
		todayStatus attendance.TodayStatusResponse
		monthly     report.MonthlySummary
		recent      []attendance.RecordResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		status, err := s.attendance.TodayStatus(gctx, personID)
		if err != nil {
			return err
		}
		todayStatus = status
		return nil
	})

	g.Go(func() error {
		summary, err := s.PersonalMonthlySummary(gctx, personID, int(now.Month()), now.Year())
		if err != nil {
			return err
		}
		monthly = summary
		return nil
	})

	g.Go(func() error {
		start := today.AddDate(0, 0, -7).Format("2006-01-02")
		end := today.Format("2006-01-02")

		p, err := s.people.GetByID(gctx, personID)
		if err != nil {
			return err
		}

		records, err := s.queries.Filtered(gctx, attendance.Filter{
			EmployeeCode: &p.EmployeeCode,
			StartDate:    &start,
			EndDate:      &end,
			Limit:        7,
		})
		if err != nil {
			return err
		}

		recent = make([]attendance.RecordResponse, 0, len(records))
		for _, rec := range records {
			recent = append(recent, attendance.RecordResponse{
				ID:           rec.ID,
				Date:         rec.Date,
				CheckInTime:  rec.CheckInTime,
				CheckOutTime: rec.CheckOutTime,
				Status:       rec.Status,
				TotalHours:   rec.TotalHours,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.EmployeeDashboard{}, err
	}

	return report.EmployeeDashboard{
		TodayStatus:      todayStatus,
		MonthlySummary:   monthly,
		RecentAttendance: recent,
	}, nil
}

// recordsForDay fetches one day's organization-wide records.
func (s *ReportServiceImpl) recordsForDay(ctx context.Context, day time.Time) ([]attendance.RecordWithPersonResponse, error) {
	ds := day.Format("2006-01-02")
	return s.queries.Filtered(ctx, attendance.Filter{
		StartDate: &ds,
		EndDate:   &ds,
	})
}
