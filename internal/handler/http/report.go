package http

import (
	"net/http"
	"strconv"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

// maxOrgResults caps organization-wide listing responses.
const maxOrgResults = 500

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	MySummary(w http.ResponseWriter, r *http.Request)
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	TeamSummary(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	queryService  attendance.QueryService
}

func NewReportHandler(reportService report.Service, queryService attendance.QueryService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		queryService:  queryService,
	}
}

// filterFromQuery builds the organization-wide criteria from query
// parameters, capping the result size.
func filterFromQuery(r *http.Request) attendance.Filter {
	filter := attendance.Filter{Limit: maxOrgResults}

	if code := r.URL.Query().Get("employeeId"); code != "" {
		filter.EmployeeCode = &code
	}

	if startDate := r.URL.Query().Get("startDate"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("endDate"); endDate != "" {
		filter.EndDate = &endDate
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 && limit < maxOrgResults {
			filter.Limit = limit
		}
	}

	return filter
}

// monthYearFromQuery reads the optional month/year pair; zero values mean
// the current month.
func monthYearFromQuery(r *http.Request) (month, year int, err error) {
	if m := r.URL.Query().Get("month"); m != "" {
		month, err = strconv.Atoi(m)
		if err != nil {
			return 0, 0, err
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			return 0, 0, err
		}
	}
	return month, year, nil
}

// List implements ReportHandler.
func (h *reportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.queryService.Filtered(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MySummary implements ReportHandler.
func (h *reportHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	month, year, err := monthYearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numbers", nil)
		return
	}

	result, err := h.reportService.PersonalMonthlySummary(r.Context(), identity.PersonID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeSummary implements ReportHandler.
func (h *reportHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")

	month, year, err := monthYearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numbers", nil)
		return
	}

	result, err := h.reportService.PersonalMonthlySummary(r.Context(), personID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamSummary implements ReportHandler.
func (h *reportHandlerImpl) TeamSummary(w http.ResponseWriter, r *http.Request) {
	month, year, err := monthYearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numbers", nil)
		return
	}

	result, err := h.reportService.TeamSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TodayStatus implements ReportHandler.
func (h *reportHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.TodayStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler. The body is raw CSV, not the JSON
// envelope.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.reportService.ExportCSV(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance-report.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
