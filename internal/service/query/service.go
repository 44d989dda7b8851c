package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
)

type QueryServiceImpl struct {
	records attendance.Repository
	people  person.Repository
	loc     *time.Location
}

func NewQueryService(
	records attendance.Repository,
	people person.Repository,
	loc *time.Location,
) attendance.QueryService {
	return &QueryServiceImpl{
		records: records,
		people:  people,
		loc:     loc,
	}
}

// History implements attendance.QueryService.
func (s *QueryServiceImpl) History(ctx context.Context, personID string, filter attendance.HistoryFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q := attendance.Query{
		PersonID: &personID,
		Limit:    filter.Limit,
	}

	if filter.Month != nil && filter.Year != nil {
		from, to := attendance.MonthRange(*filter.Year, time.Month(*filter.Month), s.loc)
		q.From = &from
		q.To = &to
	}

	records, err := s.records.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordResponse(rec))
	}

	return responses, nil
}

// Filtered implements attendance.QueryService. An employee code that does
// not resolve in the directory contributes no person filter; the rest of
// the criteria still apply and the result set is simply unrestricted by
// person. Directory failures other than not-found are surfaced.
func (s *QueryServiceImpl) Filtered(ctx context.Context, filter attendance.Filter) ([]attendance.RecordWithPersonResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	q := attendance.Query{Limit: filter.Limit}

	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		p, err := s.people.GetByEmployeeCode(ctx, *filter.EmployeeCode)
		switch {
		case err == nil:
			q.PersonID = &p.ID
		case errors.Is(err, person.ErrPersonNotFound):
			// unknown code: drop the person criterion
		default:
			return nil, fmt.Errorf("failed to resolve employee code: %w", err)
		}
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		from, err := time.ParseInLocation("2006-01-02", *filter.StartDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		q.From = &from
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *filter.EndDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		// inclusive upper bound: end of that day
		to := parsed.AddDate(0, 0, 1).Add(-time.Millisecond)
		q.To = &to
	}

	if filter.Status != nil && *filter.Status != "" {
		status := attendance.Status(*filter.Status)
		q.Status = &status
	}

	records, err := s.records.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}

	responses := make([]attendance.RecordWithPersonResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToRecordWithPersonResponse(rec))
	}

	return responses, nil
}
