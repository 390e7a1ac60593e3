package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklane/timekeeping-backend-go/internal/domain/report"
	"github.com/worklane/timekeeping-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyReport(w http.ResponseWriter, r *http.Request)
	MonthlyReportExcel(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlyReport implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	req, err := reportRequestFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numeric", nil)
		return
	}

	monthlyReport, err := h.reportService.MonthlyReport(r.Context(), req)
	if err != nil {
		slog.Error("MonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthlyReport)
}

// MonthlyReportExcel implements ReportHandler.
//
// The workbook is rendered into a buffer before any header is written, so a
// failed render still produces a proper JSON error response.
func (h *ReportHandlerImpl) MonthlyReportExcel(w http.ResponseWriter, r *http.Request) {
	req, err := reportRequestFromQuery(r)
	if err != nil {
		response.BadRequest(w, "month and year must be numeric", nil)
		return
	}

	var buf bytes.Buffer
	filename, err := h.reportService.WriteMonthlyExcel(r.Context(), req, &buf)
	if err != nil {
		slog.Error("MonthlyReportExcel service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("MonthlyReportExcel write error", "error", err)
	}
}

func reportRequestFromQuery(r *http.Request) (report.MonthlyReportRequest, error) {
	now := time.Now().UTC()
	req := report.MonthlyReportRequest{
		Year:  now.Year(),
		Month: int(now.Month()),
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return report.MonthlyReportRequest{}, err
		}
		req.Year = year
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			return report.MonthlyReportRequest{}, err
		}
		req.Month = month
	}

	return req, nil
}
