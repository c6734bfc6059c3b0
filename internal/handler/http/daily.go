package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/daily"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type DailyHandler interface {
	GetDay(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	DeleteExpense(w http.ResponseWriter, r *http.Request)
	DeleteStaffEntry(w http.ResponseWriter, r *http.Request)
	SuggestExpenseNames(w http.ResponseWriter, r *http.Request)
}

type DailyHandlerImpl struct {
	dailyService daily.DailyService
}

func NewDailyHandler(dailyService daily.DailyService) DailyHandler {
	return &DailyHandlerImpl{
		dailyService: dailyService,
	}
}

// GetDay implements DailyHandler.
func (h *DailyHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	storeID := r.URL.Query().Get("store")
	date := r.URL.Query().Get("date")
	if !store.IsValid(storeID) {
		response.BadRequest(w, "Unknown store", nil)
		return
	}
	if !validator.IsValidDate(date) {
		response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
		return
	}

	result, err := h.dailyService.GetDay(r.Context(), storeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Save implements DailyHandler.
func (h *DailyHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req daily.SaveDailyRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Save daily decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dailyService.Save(r.Context(), req)
	if err != nil {
		slog.Error("Save daily service error", "error", err, "store", req.StoreID, "date", req.Date)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Daily entry saved successfully", result)
}

// Preview implements DailyHandler.
func (h *DailyHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req daily.PreviewRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dailyService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// DeleteExpense implements DailyHandler.
func (h *DailyHandlerImpl) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense id", nil)
		return
	}
	storeID := r.URL.Query().Get("store")
	date := r.URL.Query().Get("date")
	if !store.IsValid(storeID) || !validator.IsValidDate(date) {
		response.BadRequest(w, "store and date query parameters are required", nil)
		return
	}

	result, err := h.dailyService.DeleteExpense(r.Context(), id, storeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Expense deleted successfully", result)
}

// DeleteStaffEntry implements DailyHandler.
func (h *DailyHandlerImpl) DeleteStaffEntry(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.Atoi(chi.URLParam(r, "staffId"))
	if err != nil {
		response.BadRequest(w, "Invalid staff id", nil)
		return
	}
	storeID := r.URL.Query().Get("store")
	date := r.URL.Query().Get("date")
	if !store.IsValid(storeID) || !validator.IsValidDate(date) {
		response.BadRequest(w, "store and date query parameters are required", nil)
		return
	}

	result, err := h.dailyService.DeleteStaffEntry(r.Context(), staffID, storeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff entry deleted successfully", result)
}

// SuggestExpenseNames implements DailyHandler.
func (h *DailyHandlerImpl) SuggestExpenseNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.dailyService.SuggestExpenseNames(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}
