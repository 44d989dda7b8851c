package http

import (
	"net/http"
	"strconv"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
)

// maxPersonalResults caps personal history responses.
const maxPersonalResults = 100

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
	queryService      attendance.QueryService
}

func NewAttendanceHandler(attendanceService attendance.Service, queryService attendance.QueryService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		queryService:      queryService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), identity.PersonID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), identity.PersonID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.TodayStatus(r.Context(), identity.PersonID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := attendance.HistoryFilter{Limit: maxPersonalResults}

	if m := r.URL.Query().Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		filter.Month = &month
	}

	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = &year
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 && limit < maxPersonalResults {
			filter.Limit = limit
		}
	}

	results, err := h.queryService.History(r.Context(), identity.PersonID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
