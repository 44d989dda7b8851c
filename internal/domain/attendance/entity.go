package attendance

import (
	"time"
)

type Record struct {
	ID         string
	PersonID   string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	TotalHours float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined person attributes for reporting views
	PersonName       *string
	PersonEmail      *string
	PersonCode       *string
	PersonDepartment *string
}

// Department returns the joined department, bucketing unset values
// under the default.
func (r *Record) Department() string {
	if r.PersonDepartment == nil || *r.PersonDepartment == "" {
		return "General"
	}
	return *r.PersonDepartment
}

// HasCheckedIn reports whether the record carries a check-in timestamp.
func (r *Record) HasCheckedIn() bool {
	return r.CheckIn != nil
}
