package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// Register implements AuthHandler.
func (h *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration successful", result)
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Profile(r.Context(), identity.PersonID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
