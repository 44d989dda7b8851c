package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

func personRecord(id, name, dept string, status attendance.Status, checkedIn bool, hours float64) attendance.RecordWithPersonResponse {
	rec := attendance.RecordWithPersonResponse{
		User: attendance.PersonSummary{
			ID:         id,
			Name:       name,
			Department: dept,
		},
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     status,
		TotalHours: hours,
	}
	if checkedIn {
		checkIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		rec.CheckInTime = &checkIn
	}
	return rec
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.Present)
	assert.Zero(t, summary.Absent)
	assert.Zero(t, summary.Late)
	assert.Zero(t, summary.HalfDay)
	assert.Zero(t, summary.TotalHours)
	assert.Zero(t, summary.TotalDays)
}

func TestSummarizeCountsByStatus(t *testing.T) {
	records := []attendance.RecordResponse{
		{Status: attendance.StatusPresent, TotalHours: 8},
		{Status: attendance.StatusPresent, TotalHours: 7.5},
		{Status: attendance.StatusLate, TotalHours: 6},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusHalfDay, TotalHours: 4},
	}

	summary := Summarize(records)

	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.HalfDay)
	assert.Equal(t, 25.5, summary.TotalHours)
	assert.Equal(t, 5, summary.TotalDays)
}

func TestSummarizeIsAdditive(t *testing.T) {
	first := []attendance.RecordResponse{
		{Status: attendance.StatusPresent, TotalHours: 8},
		{Status: attendance.StatusLate, TotalHours: 7},
	}
	second := []attendance.RecordResponse{
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusPresent, TotalHours: 8.25},
	}

	a := Summarize(first)
	b := Summarize(second)
	whole := Summarize(append(append([]attendance.RecordResponse{}, first...), second...))

	assert.Equal(t, whole.Present, a.Present+b.Present)
	assert.Equal(t, whole.Absent, a.Absent+b.Absent)
	assert.Equal(t, whole.Late, a.Late+b.Late)
	assert.Equal(t, whole.TotalHours, a.TotalHours+b.TotalHours)
	assert.Equal(t, whole.TotalDays, a.TotalDays+b.TotalDays)
}

func TestSummarizeTeam(t *testing.T) {
	records := []attendance.RecordWithPersonResponse{
		personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 8),
		personRecord("alice", "Alice", "Engineering", attendance.StatusLate, true, 7),
		personRecord("bob", "Bob", "Engineering", attendance.StatusPresent, true, 8),
		personRecord("carol", "Carol", "Sales", attendance.StatusAbsent, false, 0),
	}

	summary := SummarizeTeam(records)

	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 23.0, summary.TotalHours)
	assert.Equal(t, 3, summary.TotalEmployees)

	assert.Equal(t, 2, summary.DepartmentWise["Engineering"]["present"])
	assert.Equal(t, 1, summary.DepartmentWise["Engineering"]["late"])
	assert.Equal(t, 1, summary.DepartmentWise["Sales"]["absent"])
}

func TestSummarizeTeamDefaultsDepartment(t *testing.T) {
	records := []attendance.RecordWithPersonResponse{
		personRecord("dave", "Dave", "", attendance.StatusPresent, true, 8),
	}

	summary := SummarizeTeam(records)

	assert.Equal(t, 1, summary.DepartmentWise["General"]["present"])
}

func TestSummarizeDay(t *testing.T) {
	records := []attendance.RecordWithPersonResponse{
		personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 0),
		personRecord("bob", "Bob", "Engineering", attendance.StatusLate, true, 0),
	}

	// Headcount of 3: Alice present, Bob late but checked in, one person
	// with no record at all.
	status := SummarizeDay(records, 3)

	assert.Equal(t, 2, status.Present)
	assert.Equal(t, 1, status.Late)
	assert.Equal(t, 1, status.Absent)
	assert.Equal(t, 3, status.Total)
	assert.Len(t, status.Attendance, 2)
}

func TestSummarizeDayEmptyOrganization(t *testing.T) {
	status := SummarizeDay(nil, 0)

	assert.Zero(t, status.Present)
	assert.Zero(t, status.Absent)
	assert.Zero(t, status.Total)
	assert.Empty(t, status.Attendance)
}

func TestCheckedInPeople(t *testing.T) {
	records := []attendance.RecordWithPersonResponse{
		personRecord("alice", "Alice", "Engineering", attendance.StatusPresent, true, 0),
		personRecord("carol", "Carol", "Sales", attendance.StatusAbsent, false, 0),
	}

	ids := checkedInPeople(records)

	assert.Contains(t, ids, "alice")
	assert.NotContains(t, ids, "carol")
}
