package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// Response field names mirror the public API contract; downstream tabular
// display and CSV export rely on these staying stable.

type CheckInResponse struct {
	ID          string    `json:"id"`
	CheckInTime time.Time `json:"checkInTime"`
	Status      Status    `json:"status"`
	Date        time.Time `json:"date"`
}

type CheckOutResponse struct {
	ID           string    `json:"id"`
	CheckInTime  time.Time `json:"checkInTime"`
	CheckOutTime time.Time `json:"checkOutTime"`
	TotalHours   float64   `json:"totalHours"`
	Status       Status    `json:"status"`
}

type TodayStatusResponse struct {
	CheckedIn    bool       `json:"checkedIn"`
	CheckedOut   bool       `json:"checkedOut"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	TotalHours   *float64   `json:"totalHours,omitempty"`
	Status       string     `json:"status"`
}

type RecordResponse struct {
	ID           string     `json:"id"`
	Date         time.Time  `json:"date"`
	CheckInTime  *time.Time `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"`
	Status       Status     `json:"status"`
	TotalHours   float64    `json:"totalHours"`
}

// PersonSummary is the minimal person shape joined into reporting views.
type PersonSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	EmployeeCode string `json:"employeeId"`
	Department   string `json:"department"`
}

type RecordWithPersonResponse struct {
	ID           string        `json:"id"`
	User         PersonSummary `json:"user"`
	Date         time.Time     `json:"date"`
	CheckInTime  *time.Time    `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time    `json:"checkOutTime,omitempty"`
	Status       Status        `json:"status"`
	TotalHours   float64       `json:"totalHours"`
}

// HistoryFilter restricts a personal history to one calendar month when
// both Month and Year are set.
type HistoryFilter struct {
	Month *int
	Year  *int
	Limit int
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if (f.Month == nil) != (f.Year == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month and year must be provided together",
		})
	}

	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if f.Year != nil && (*f.Year < 1970 || *f.Year > 9999) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Filter is the organization-wide retrieval criteria. Any subset may be
// set. An employee code that does not resolve contributes no person
// filter; the remaining criteria still apply.
type Filter struct {
	EmployeeCode *string `json:"employeeId,omitempty"`
	StartDate    *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"endDate,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`
	Limit        int     `json:"-"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, ValidStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, absent, late, half-day",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRecordResponse converts a Record entity for personal views.
func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		Date:         r.Date,
		CheckInTime:  r.CheckIn,
		CheckOutTime: r.CheckOut,
		Status:       r.Status,
		TotalHours:   r.TotalHours,
	}
}

// ToRecordWithPersonResponse converts a Record with joined person
// attributes for organization-wide views.
func ToRecordWithPersonResponse(r Record) RecordWithPersonResponse {
	user := PersonSummary{ID: r.PersonID, Department: r.Department()}
	if r.PersonName != nil {
		user.Name = *r.PersonName
	}
	if r.PersonEmail != nil {
		user.Email = *r.PersonEmail
	}
	if r.PersonCode != nil {
		user.EmployeeCode = *r.PersonCode
	}

	return RecordWithPersonResponse{
		ID:           r.ID,
		User:         user,
		Date:         r.Date,
		CheckInTime:  r.CheckIn,
		CheckOutTime: r.CheckOut,
		Status:       r.Status,
		TotalHours:   r.TotalHours,
	}
}
