package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	repo   attendance.Repository
	clock  clock.Clock
	policy attendance.LatePolicy
	loc    *time.Location
}

func NewAttendanceService(
	repo attendance.Repository,
	clk clock.Clock,
	policy attendance.LatePolicy,
	loc *time.Location,
) attendance.Service {
	return &AttendanceServiceImpl{
		repo:   repo,
		clock:  clk,
		policy: policy,
		loc:    loc,
	}
}

// CheckIn implements attendance.Service. Status is classified here, once,
// from the check-in instant; check-out never revisits it.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, personID string) (attendance.CheckInResponse, error) {
	now := s.clock.Now().In(s.loc)
	day := attendance.DayOf(now, s.loc)

	rec, err := s.repo.GetByPersonAndDay(ctx, personID, day)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	if rec != nil && rec.HasCheckedIn() {
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := s.policy.Determine(now)

	if rec == nil {
		created, err := s.repo.Create(ctx, attendance.Record{
			PersonID: personID,
			Date:     day,
			CheckIn:  &now,
			Status:   status,
		})
		if err != nil {
			// A concurrent check-in won the insert race; to the caller
			// that is indistinguishable from having checked in already.
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
			}
			return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		rec = &created
	} else {
		rec.CheckIn = &now
		rec.Status = status
		if err := s.repo.Update(ctx, *rec); err != nil {
			return attendance.CheckInResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
	}

	return attendance.CheckInResponse{
		ID:          rec.ID,
		CheckInTime: *rec.CheckIn,
		Status:      rec.Status,
		Date:        rec.Date,
	}, nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, personID string) (attendance.CheckOutResponse, error) {
	now := s.clock.Now().In(s.loc)
	day := attendance.DayOf(now, s.loc)

	rec, err := s.repo.GetByPersonAndDay(ctx, personID, day)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	if rec == nil || !rec.HasCheckedIn() {
		return attendance.CheckOutResponse{}, attendance.ErrMustCheckInFirst
	}

	if rec.CheckOut != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	totalHours, err := attendance.TotalHours(*rec.CheckIn, now)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	rec.CheckOut = &now
	rec.TotalHours = totalHours

	if err := s.repo.Update(ctx, *rec); err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.CheckOutResponse{
		ID:           rec.ID,
		CheckInTime:  *rec.CheckIn,
		CheckOutTime: *rec.CheckOut,
		TotalHours:   rec.TotalHours,
		Status:       rec.Status,
	}, nil
}

// TodayStatus implements attendance.Service. Read-only; calling it twice
// without intervening writes returns identical results.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, personID string) (attendance.TodayStatusResponse, error) {
	now := s.clock.Now().In(s.loc)
	day := attendance.DayOf(now, s.loc)

	rec, err := s.repo.GetByPersonAndDay(ctx, personID, day)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}

	if rec == nil {
		return attendance.TodayStatusResponse{
			CheckedIn:  false,
			CheckedOut: false,
			Status:     attendance.StatusNotCheckedIn,
		}, nil
	}

	return attendance.TodayStatusResponse{
		CheckedIn:    rec.HasCheckedIn(),
		CheckedOut:   rec.CheckOut != nil,
		CheckInTime:  rec.CheckIn,
		CheckOutTime: rec.CheckOut,
		TotalHours:   &rec.TotalHours,
		Status:       string(rec.Status),
	}, nil
}
