package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/domain/yearly"
	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type YearlyHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type YearlyHandlerImpl struct {
	yearlyService yearly.YearlyService
}

func NewYearlyHandler(yearlyService yearly.YearlyService) YearlyHandler {
	return &YearlyHandlerImpl{
		yearlyService: yearlyService,
	}
}

// GetReport implements YearlyHandler.
func (h *YearlyHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "year is out of range", nil)
		return
	}
	storeID := r.URL.Query().Get("store")
	if storeID == "" {
		storeID = store.All
	}
	if storeID != store.All && !store.IsValid(storeID) {
		response.BadRequest(w, "Unknown store", nil)
		return
	}

	result, err := h.yearlyService.GetReport(r.Context(), year, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Save implements YearlyHandler.
func (h *YearlyHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req yearly.SaveYearlyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save yearly decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.yearlyService.Save(r.Context(), req); err != nil {
		slog.Error("Save yearly service error", "error", err, "year", req.Year)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Yearly memos saved successfully", nil)
}
