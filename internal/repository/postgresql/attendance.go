package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// GetByPersonAndDay implements attendance.Repository.
func (a *attendanceRepository) GetByPersonAndDay(ctx context.Context, personID string, day time.Time) (*attendance.Record, error) {
	query := `
		SELECT id, person_id, date, check_in, check_out, status, total_hours,
		       created_at, updated_at
		FROM attendance_records
		WHERE person_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := a.db.QueryRow(ctx, query, personID, day).Scan(
		&rec.ID, &rec.PersonID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by person and day: %w", err)
	}

	return &rec, nil
}

// Create implements attendance.Repository. The unique index on
// (person_id, date) is the safety net against two concurrent check-ins:
// the losing insert surfaces as ErrDuplicateRecord.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records (id, person_id, date, check_in, check_out, status, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := a.db.QueryRow(ctx, query,
		rec.ID, rec.PersonID, rec.Date, rec.CheckIn, rec.CheckOut,
		rec.Status, rec.TotalHours,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrDuplicateRecord
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	query := `
		UPDATE attendance_records
		SET check_in = $1, check_out = $2, status = $3, total_hours = $4, updated_at = now()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := a.db.QueryRow(ctx, query,
		rec.CheckIn, rec.CheckOut, rec.Status, rec.TotalHours, rec.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, q attendance.Query) ([]attendance.Record, error) {
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if q.PersonID != nil && *q.PersonID != "" {
		baseWhere += fmt.Sprintf(" AND r.person_id = $%d", argIdx)
		args = append(args, *q.PersonID)
		argIdx++
	}

	if q.From != nil {
		baseWhere += fmt.Sprintf(" AND r.date >= $%d", argIdx)
		args = append(args, *q.From)
		argIdx++
	}

	if q.To != nil {
		baseWhere += fmt.Sprintf(" AND r.date <= $%d", argIdx)
		args = append(args, *q.To)
		argIdx++
	}

	if q.Status != nil && *q.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *q.Status)
		argIdx++
	}

	limitClause := ""
	if q.Limit > 0 {
		limitClause = fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, q.Limit)
	}

	query := fmt.Sprintf(`
		SELECT r.id, r.person_id, r.date, r.check_in, r.check_out, r.status, r.total_hours,
		       r.created_at, r.updated_at,
		       p.name AS person_name,
		       p.email AS person_email,
		       p.employee_code AS person_code,
		       p.department AS person_department
		FROM attendance_records r
		LEFT JOIN people p ON p.id = r.person_id
		WHERE %s
		ORDER BY r.date DESC, r.created_at DESC%s
	`, baseWhere, limitClause)

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.PersonID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.Status, &rec.TotalHours, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.PersonName, &rec.PersonEmail, &rec.PersonCode, &rec.PersonDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
