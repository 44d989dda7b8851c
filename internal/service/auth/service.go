package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	people     person.Repository
	jwtService jwt.Service
}

func NewAuthService(people person.Repository, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		people:     people,
		jwtService: jwtService,
	}
}

// Register implements auth.Service.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := person.Role(req.Role)
	if role == "" {
		role = person.RoleEmployee
	}

	department := req.Department
	if department == "" {
		department = person.DefaultDepartment
	}

	created, err := s.people.Create(ctx, person.Person{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Department:   department,
	})
	if err != nil {
		if errors.Is(err, person.ErrEmailExists) {
			return auth.AuthResponse{}, person.ErrEmailExists
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to create person: %w", err)
	}

	token, _, err := s.jwtService.GenerateAccessToken(created)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.AuthResponse{
		Token: token,
		User:  person.ToResponse(created),
	}, nil
}

// Login implements auth.Service. A missing account and a wrong password
// report the same error so the response does not leak which emails exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	p, err := s.people.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, person.ErrPersonNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get person by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(p)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return auth.AuthResponse{
		Token: token,
		User:  person.ToResponse(p),
	}, nil
}

// Profile implements auth.Service.
func (s *AuthServiceImpl) Profile(ctx context.Context, personID string) (person.Response, error) {
	p, err := s.people.GetByID(ctx, personID)
	if err != nil {
		return person.Response{}, err
	}
	return person.ToResponse(p), nil
}
