package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/person"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	people person.Repository
}

func NewUserHandler(people person.Repository) UserHandler {
	return &userHandlerImpl{
		people: people,
	}
}

// ListEmployees implements UserHandler.
func (h *userHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.people.ListByRole(r.Context(), person.RoleEmployee)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results := make([]person.Response, 0, len(employees))
	for _, emp := range employees {
		results = append(results, person.ToResponse(emp))
	}

	response.Success(w, results)
}
