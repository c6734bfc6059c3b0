package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/teppen-ops/venue-backend/internal/domain/monthly"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type MonthlyHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type MonthlyHandlerImpl struct {
	monthlyService monthly.MonthlyService
}

func NewMonthlyHandler(monthlyService monthly.MonthlyService) MonthlyHandler {
	return &MonthlyHandlerImpl{
		monthlyService: monthlyService,
	}
}

// monthlyReportParams pulls year, month and store out of the query string.
func monthlyReportParams(r *http.Request) (year, month int, storeID string, err error) {
	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || !validator.IsValidYear(year) {
		return 0, 0, "", fmt.Errorf("year is out of range")
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || !validator.IsValidMonth(month) {
		return 0, 0, "", fmt.Errorf("month must be between 1 and 12")
	}
	storeID = r.URL.Query().Get("store")
	if storeID == "" {
		storeID = store.All
	}
	if storeID != store.All && !store.IsValid(storeID) {
		return 0, 0, "", fmt.Errorf("unknown store")
	}
	return year, month, storeID, nil
}

// GetReport implements MonthlyHandler.
func (h *MonthlyHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	year, month, storeID, err := monthlyReportParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	result, err := h.monthlyService.GetReport(r.Context(), year, month, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Save implements MonthlyHandler.
func (h *MonthlyHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req monthly.SaveMonthlyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save monthly decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.monthlyService.Save(r.Context(), req); err != nil {
		slog.Error("Save monthly service error", "error", err, "year", req.Year, "month", req.Month)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Monthly report saved successfully", nil)
}

// Export implements MonthlyHandler.
func (h *MonthlyHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	year, month, storeID, err := monthlyReportParams(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	data, name, err := h.monthlyService.ExportXLSX(r.Context(), year, month, storeID)
	if err != nil {
		slog.Error("Export monthly service error", "error", err, "year", year, "month", month)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Export monthly write error", "error", err)
	}
}
