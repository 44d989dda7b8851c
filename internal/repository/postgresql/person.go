package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type personRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.Repository {
	return &personRepository{db: db}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements person.Repository. Employee codes are issued from a
// database sequence so concurrent registrations can never collide.
func (r *personRepository) Create(ctx context.Context, p person.Person) (person.Person, error) {
	if p.Department == "" {
		p.Department = person.DefaultDepartment
	}
	if p.Role == "" {
		p.Role = person.RoleEmployee
	}
	p.ID = uuid.NewString()

	query := `
		INSERT INTO people (id, name, email, password_hash, role, employee_code, department)
		VALUES ($1, $2, $3, $4, $5,
			'EMP' || lpad(nextval('employee_code_seq')::text, 3, '0'), $6)
		RETURNING employee_code, created_at
	`

	err := r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Email, p.PasswordHash, p.Role, p.Department,
	).Scan(&p.EmployeeCode, &p.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return person.Person{}, person.ErrEmailExists
		}
		return person.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return p, nil
}

const personColumns = `id, name, email, password_hash, role, employee_code, department, created_at`

func scanPerson(row pgx.Row) (person.Person, error) {
	var p person.Person
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.PasswordHash,
		&p.Role, &p.EmployeeCode, &p.Department, &p.CreatedAt,
	)
	return p, err
}

// GetByID implements person.Repository.
func (r *personRepository) GetByID(ctx context.Context, id string) (person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	p, err := scanPerson(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person by id: %w", err)
	}

	return p, nil
}

// GetByEmail implements person.Repository.
func (r *personRepository) GetByEmail(ctx context.Context, email string) (person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE lower(email) = lower($1)`

	p, err := scanPerson(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person by email: %w", err)
	}

	return p, nil
}

// GetByEmployeeCode implements person.Repository.
func (r *personRepository) GetByEmployeeCode(ctx context.Context, code string) (person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE employee_code = $1`

	p, err := scanPerson(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person by employee code: %w", err)
	}

	return p, nil
}

// ListByRole implements person.Repository.
func (r *personRepository) ListByRole(ctx context.Context, role person.Role) ([]person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE role = $1 ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list people by role: %w", err)
	}
	defer rows.Close()

	var people []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// CountByRole implements person.Repository.
func (r *personRepository) CountByRole(ctx context.Context, role person.Role) (int64, error) {
	query := `SELECT COUNT(*) FROM people WHERE role = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count people by role: %w", err)
	}

	return count, nil
}
