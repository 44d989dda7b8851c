package attendance

import (
	"context"
)

// Service owns the check-in/check-out state transition and status
// classification for a single person-day. The acting person is always an
// explicit argument; nothing is read from ambient state.
type Service interface {
	// CheckIn records the first presence event of the day.
	CheckIn(ctx context.Context, personID string) (CheckInResponse, error)

	// CheckOut closes today's record and computes total hours.
	CheckOut(ctx context.Context, personID string) (CheckOutResponse, error)

	// TodayStatus reports today's record as a normalized view. Read-only
	// and idempotent.
	TodayStatus(ctx context.Context, personID string) (TodayStatusResponse, error)
}

// QueryService is range/filter retrieval of records, kept separate from
// the state machine so reporting never mutates anything.
type QueryService interface {
	// History returns a person's records newest first, optionally
	// restricted to one calendar month.
	History(ctx context.Context, personID string, filter HistoryFilter) ([]RecordResponse, error)

	// Filtered returns records matching any subset of person / date range /
	// status criteria, joined with person attributes for reporting.
	Filtered(ctx context.Context, filter Filter) ([]RecordWithPersonResponse, error)
}
