package auth

import (
	"context"

	"github.com/attendly/attendance-backend-go/internal/domain/person"
)

// Service issues credentials and resolves the authenticated profile.
type Service interface {
	// Register creates a person with a hashed password and an issued
	// employee code, returning a signed token.
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)

	// Profile returns the person behind an authenticated id.
	Profile(ctx context.Context, personID string) (person.Response, error)
}
