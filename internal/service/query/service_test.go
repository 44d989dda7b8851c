package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// capturingRepo records the query it was asked to run.
type capturingRepo struct {
	lastQuery attendance.Query
	records   []attendance.Record
}

func (c *capturingRepo) GetByPersonAndDay(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (c *capturingRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (c *capturingRepo) Update(_ context.Context, _ attendance.Record) error {
	return nil
}

func (c *capturingRepo) List(_ context.Context, q attendance.Query) ([]attendance.Record, error) {
	c.lastQuery = q
	return c.records, nil
}

// fakeDirectory resolves a single known employee code.
type fakeDirectory struct {
	known   person.Person
	failure error
}

func (f *fakeDirectory) Create(_ context.Context, p person.Person) (person.Person, error) {
	return p, nil
}

func (f *fakeDirectory) GetByID(_ context.Context, _ string) (person.Person, error) {
	return f.known, nil
}

func (f *fakeDirectory) GetByEmail(_ context.Context, _ string) (person.Person, error) {
	return f.known, nil
}

func (f *fakeDirectory) GetByEmployeeCode(_ context.Context, code string) (person.Person, error) {
	if f.failure != nil {
		return person.Person{}, f.failure
	}
	if code != f.known.EmployeeCode {
		return person.Person{}, person.ErrPersonNotFound
	}
	return f.known, nil
}

func (f *fakeDirectory) ListByRole(_ context.Context, _ person.Role) ([]person.Person, error) {
	return nil, nil
}

func (f *fakeDirectory) CountByRole(_ context.Context, _ person.Role) (int64, error) {
	return 0, nil
}

func TestHistoryMonthFilter(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewQueryService(repo, &fakeDirectory{}, time.UTC)

	month, year := 2, 2025
	_, err := svc.History(context.Background(), "person-1", attendance.HistoryFilter{
		Month: &month,
		Year:  &year,
		Limit: 10,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.PersonID)
	assert.Equal(t, "person-1", *repo.lastQuery.PersonID)
	assert.Equal(t, 10, repo.lastQuery.Limit)

	require.NotNil(t, repo.lastQuery.From)
	require.NotNil(t, repo.lastQuery.To)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), *repo.lastQuery.From)
	assert.Equal(t, 28, repo.lastQuery.To.Day())
}

func TestHistoryWithoutMonthIsUnbounded(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewQueryService(repo, &fakeDirectory{}, time.UTC)

	_, err := svc.History(context.Background(), "person-1", attendance.HistoryFilter{})
	require.NoError(t, err)

	assert.Nil(t, repo.lastQuery.From)
	assert.Nil(t, repo.lastQuery.To)
}

func TestHistoryRejectsInvalidMonth(t *testing.T) {
	svc := NewQueryService(&capturingRepo{}, &fakeDirectory{}, time.UTC)

	month, year := 13, 2025
	_, err := svc.History(context.Background(), "person-1", attendance.HistoryFilter{
		Month: &month,
		Year:  &year,
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestHistoryRejectsMonthWithoutYear(t *testing.T) {
	svc := NewQueryService(&capturingRepo{}, &fakeDirectory{}, time.UTC)

	month := 3
	_, err := svc.History(context.Background(), "person-1", attendance.HistoryFilter{Month: &month})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestFilteredResolvesEmployeeCode(t *testing.T) {
	repo := &capturingRepo{}
	directory := &fakeDirectory{known: person.Person{ID: "person-7", EmployeeCode: "EMP007"}}
	svc := NewQueryService(repo, directory, time.UTC)

	code := "EMP007"
	_, err := svc.Filtered(context.Background(), attendance.Filter{EmployeeCode: &code})
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.PersonID)
	assert.Equal(t, "person-7", *repo.lastQuery.PersonID)
}

func TestFilteredUnknownEmployeeCodeDropsCriterion(t *testing.T) {
	repo := &capturingRepo{}
	directory := &fakeDirectory{known: person.Person{ID: "person-7", EmployeeCode: "EMP007"}}
	svc := NewQueryService(repo, directory, time.UTC)

	code := "EMP999"
	_, err := svc.Filtered(context.Background(), attendance.Filter{EmployeeCode: &code})
	require.NoError(t, err)

	assert.Nil(t, repo.lastQuery.PersonID)
}

func TestFilteredSurfacesDirectoryFailure(t *testing.T) {
	boom := errors.New("connection reset")
	directory := &fakeDirectory{failure: boom}
	svc := NewQueryService(&capturingRepo{}, directory, time.UTC)

	code := "EMP007"
	_, err := svc.Filtered(context.Background(), attendance.Filter{EmployeeCode: &code})
	assert.ErrorIs(t, err, boom)
}

func TestFilteredDateRange(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewQueryService(repo, &fakeDirectory{}, time.UTC)

	start, end := "2025-03-01", "2025-03-15"
	status := "late"
	_, err := svc.Filtered(context.Background(), attendance.Filter{
		StartDate: &start,
		EndDate:   &end,
		Status:    &status,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.From)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *repo.lastQuery.From)

	// upper bound is inclusive of the whole end day
	require.NotNil(t, repo.lastQuery.To)
	assert.Equal(t, 15, repo.lastQuery.To.Day())
	assert.Equal(t, 23, repo.lastQuery.To.Hour())

	require.NotNil(t, repo.lastQuery.Status)
	assert.Equal(t, attendance.StatusLate, *repo.lastQuery.Status)
}

func TestFilteredRejectsBadStatus(t *testing.T) {
	svc := NewQueryService(&capturingRepo{}, &fakeDirectory{}, time.UTC)

	status := "vacation"
	_, err := svc.Filtered(context.Background(), attendance.Filter{Status: &status})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestFilteredMapsJoinedPerson(t *testing.T) {
	name, email, code, dept := "Alice", "alice@example.com", "EMP001", "Engineering"
	repo := &capturingRepo{records: []attendance.Record{
		{
			ID:               "rec-1",
			PersonID:         "person-1",
			Date:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Status:           attendance.StatusPresent,
			TotalHours:       8,
			PersonName:       &name,
			PersonEmail:      &email,
			PersonCode:       &code,
			PersonDepartment: &dept,
		},
	}}
	svc := NewQueryService(repo, &fakeDirectory{}, time.UTC)

	results, err := svc.Filtered(context.Background(), attendance.Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Alice", results[0].User.Name)
	assert.Equal(t, "EMP001", results[0].User.EmployeeCode)
	assert.Equal(t, "Engineering", results[0].User.Department)
	assert.Equal(t, 8.0, results[0].TotalHours)
}
