package attendance

import (
	"math"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"

	// StatusHalfDay is a valid stored value but is never assigned by the
	// check-in classification; it is reserved for administrative override.
	StatusHalfDay Status = "half-day"
)

// StatusNotCheckedIn is a view-only value reported when no record exists
// for the day. It is never persisted.
const StatusNotCheckedIn = "not_checked_in"

// ValidStatuses are the storable status values, usable as filter criteria.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
}

// LatePolicy classifies a check-in instant against the workday start.
// Arrivals within the grace period still count as present.
type LatePolicy struct {
	StartHour    int
	StartMinute  int
	GraceMinutes int
}

// DefaultLatePolicy is a 09:00 start with a 15 minute grace period.
var DefaultLatePolicy = LatePolicy{StartHour: 9, StartMinute: 0, GraceMinutes: 15}

// Determine returns the status for a check-in at t. The zero time means no
// check-in happened and classifies as absent. Only the wall-clock time of
// day matters; the date component is ignored.
func (p LatePolicy) Determine(t time.Time) Status {
	if t.IsZero() {
		return StatusAbsent
	}

	arrival := t.Hour()*60 + t.Minute()
	cutoff := p.StartHour*60 + p.StartMinute + p.GraceMinutes
	if arrival > cutoff {
		return StatusLate
	}
	return StatusPresent
}

// TotalHours computes the elapsed time between check-in and check-out in
// decimal hours, rounded to 2 places. A check-out earlier than the check-in
// is a caller contract violation and reported as an error rather than
// clamped to zero.
func TotalHours(checkIn, checkOut time.Time) (float64, error) {
	if checkOut.Before(checkIn) {
		return 0, ErrCheckOutBeforeCheckIn
	}
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100, nil
}

// DayOf truncates t to local midnight in loc, the calendar-day identity
// used for record lookup.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// MonthRange returns the inclusive bounds of a calendar month in loc:
// first day 00:00:00.000 through last day 23:59:59.999.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
