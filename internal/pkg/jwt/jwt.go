package jwt

import (
	"context"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken signs a token carrying the person's identity.
	GenerateAccessToken(p person.Person) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(p person.Person) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"person_id":   p.ID,
		"email":       p.Email,
		"employee_id": p.EmployeeCode,
		"role":        string(p.Role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// Identity is the authenticated caller extracted from a verified token.
// Handlers pass PersonID explicitly into services; nothing downstream
// reads claims from ambient context.
type Identity struct {
	PersonID     string
	EmployeeCode string
	Role         person.Role
}

// IdentityFromContext reads the verified JWT claims placed on the request
// context by the jwtauth verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	personID, _ := claims["person_id"].(string)
	employeeCode, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		PersonID:     personID,
		EmployeeCode: employeeCode,
		Role:         person.Role(role),
	}, nil
}
