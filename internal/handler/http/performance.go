package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/performance"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type PerformanceHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{
		performanceService: performanceService,
	}
}

// GetMonthly implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || staffID <= 0 {
		response.BadRequest(w, "Invalid staff id", nil)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || !validator.IsValidYear(year) {
		response.BadRequest(w, "year is out of range", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || !validator.IsValidMonth(month) {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	// Empty store means every venue the member worked at.
	storeID := r.URL.Query().Get("store")
	if storeID != "" && !store.IsValid(storeID) {
		response.BadRequest(w, "Unknown store", nil)
		return
	}

	result, err := h.performanceService.GetMonthly(r.Context(), staffID, year, month, storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
