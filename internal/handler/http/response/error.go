package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, person.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrMustCheckInFirst):
		BadRequest(w, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out cannot be earlier than check-in", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this day")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
