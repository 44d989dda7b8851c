package attendance

import (
	"context"
	"time"
)

// Query is the record retrieval criteria. All fields are optional; nil
// fields do not constrain the result. Records come back ordered by date
// descending with person attributes joined in.
type Query struct {
	PersonID *string
	From     *time.Time
	To       *time.Time
	Status   *Status
	Limit    int
}

// Repository is the durable store of attendance records. It owns the
// uniqueness guarantee: at most one record per (person, calendar day),
// enforced with a constraint so that concurrent creates fail loudly
// instead of silently overwriting.
type Repository interface {
	// GetByPersonAndDay retrieves the record for a person on a calendar
	// day. Returns nil (not an error) when no record exists.
	GetByPersonAndDay(ctx context.Context, personID string, day time.Time) (*Record, error)

	// Create inserts a new record. A duplicate (person, day) pair fails
	// with ErrDuplicateRecord.
	Create(ctx context.Context, record Record) (Record, error)

	// Update persists check-out data and status changes on an existing
	// record.
	Update(ctx context.Context, record Record) error

	// List retrieves records matching the query, newest first.
	List(ctx context.Context, query Query) ([]Record, error)
}
