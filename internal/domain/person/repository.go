package person

import "context"

// Repository is the directory of people. The attendance core never writes
// person attributes beyond initial creation; it resolves, lists and counts.
type Repository interface {
	// Create stores a new person, issuing their employee code.
	Create(ctx context.Context, p Person) (Person, error)

	// GetByID retrieves a person by internal id.
	GetByID(ctx context.Context, id string) (Person, error)

	// GetByEmail retrieves a person by email, used during login.
	GetByEmail(ctx context.Context, email string) (Person, error)

	// GetByEmployeeCode resolves an external identifier like "EMP003".
	GetByEmployeeCode(ctx context.Context, code string) (Person, error)

	// ListByRole returns people with the given role ordered by name.
	ListByRole(ctx context.Context, role Role) ([]Person, error)

	// CountByRole returns the headcount for a role.
	CountByRole(ctx context.Context, role Role) (int64, error)
}
