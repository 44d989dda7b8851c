package middleware

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, person.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, person.ErrManagerAccessRequired)
			return
		}

		if person.Role(roleStr) != person.RoleManager {
			response.HandleError(w, person.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
