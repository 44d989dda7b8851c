package http

import (
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

type DashboardHandler interface {
	Manager(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	reportService report.Service
}

func NewDashboardHandler(reportService report.Service) DashboardHandler {
	return &dashboardHandlerImpl{
		reportService: reportService,
	}
}

// Manager implements DashboardHandler.
func (h *dashboardHandlerImpl) Manager(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.ManagerDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Employee implements DashboardHandler.
func (h *dashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.reportService.EmployeeDashboard(r.Context(), identity.PersonID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
