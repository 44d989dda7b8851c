package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out state machine
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrMustCheckInFirst  = errors.New("please check in first")

	// ErrDuplicateRecord surfaces the storage uniqueness constraint on
	// (person, day) when two check-ins race. Callers treat it the same
	// as ErrAlreadyCheckedIn.
	ErrDuplicateRecord = errors.New("attendance record already exists for this day")

	// ErrCheckOutBeforeCheckIn is a caller contract violation: elapsed
	// hours must never be negative.
	ErrCheckOutBeforeCheckIn = errors.New("check-out time is before check-in time")

	ErrRecordNotFound = errors.New("attendance record not found")
)
