package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/domain/timerecord"
	"github.com/worklane/timekeeping-backend-go/internal/handler/http/response"
)

type TimeRecordHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	CurrentStatus(w http.ResponseWriter, r *http.Request)
	MonthlyRecords(w http.ResponseWriter, r *http.Request)
}

type TimeRecordHandlerImpl struct {
	timeRecordService timerecord.TimeRecordService
}

func NewTimeRecordHandler(timeRecordService timerecord.TimeRecordService) TimeRecordHandler {
	return &TimeRecordHandlerImpl{timeRecordService: timeRecordService}
}

// Toggle implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	toggleResponse, err := h.timeRecordService.Toggle(r.Context())
	if err != nil {
		slog.Error("Toggle service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance toggled", "action", toggleResponse.Action)
	response.SuccessWithMessage(w, toggleResponse.Message, toggleResponse)
}

// CurrentStatus implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) CurrentStatus(w http.ResponseWriter, r *http.Request) {
	statusResponse, err := h.timeRecordService.CurrentStatus(r.Context())
	if err != nil {
		slog.Error("CurrentStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, statusResponse)
}

// MonthlyRecords implements TimeRecordHandler.
func (h *TimeRecordHandlerImpl) MonthlyRecords(w http.ResponseWriter, r *http.Request) {
	req, err := monthYearFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numeric", nil)
		return
	}

	records, err := h.timeRecordService.MonthlyRecords(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyRecords service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// monthYearFromQuery parses the month/year query parameters, defaulting to
// the current calendar month.
func monthYearFromQuery(r *http.Request) (timerecord.MonthlyRecordsRequest, error) {
	now := time.Now().UTC()
	req := timerecord.MonthlyRecordsRequest{
		Year:  now.Year(),
		Month: int(now.Month()),
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return timerecord.MonthlyRecordsRequest{}, err
		}
		req.Year = year
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return timerecord.MonthlyRecordsRequest{}, err
		}
		req.Month = month
	}

	return req, nil
}
