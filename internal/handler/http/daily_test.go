package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/daily"
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/handler/http/response"
)

type stubDailyService struct {
	day       daily.DayResponse
	saved     *daily.SaveDailyRequest
	preview   daily.PreviewResponse
	names     []string
	recompute int
}

func (s *stubDailyService) GetDay(ctx context.Context, storeID, date string) (daily.DayResponse, error) {
	return s.day, nil
}

func (s *stubDailyService) Save(ctx context.Context, req daily.SaveDailyRequest) (daily.DayResponse, error) {
	s.saved = &req
	return s.day, nil
}

func (s *stubDailyService) Preview(ctx context.Context, req daily.PreviewRequest) (daily.PreviewResponse, error) {
	return s.preview, nil
}

func (s *stubDailyService) DeleteExpense(ctx context.Context, id int64, storeID, date string) (daily.DayResponse, error) {
	return s.day, nil
}

func (s *stubDailyService) DeleteStaffEntry(ctx context.Context, staffID int, storeID, date string) (daily.DayResponse, error) {
	return s.day, nil
}

func (s *stubDailyService) SuggestExpenseNames(ctx context.Context) ([]string, error) {
	return s.names, nil
}

func (s *stubDailyService) RecomputeRange(ctx context.Context, from, to string) (int, error) {
	return s.recompute, nil
}

func TestDailyHandler_GetDay(t *testing.T) {
	stub := &stubDailyService{day: daily.DayResponse{
		Date:    "2025-06-10",
		StoreID: "201",
		Summary: report.Summary{TotalSales: 150000, Balance: 80000, DaysCount: 1},
	}}
	handler := NewDailyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/daily?store=201&date=2025-06-10", nil)
	rec := httptest.NewRecorder()
	handler.GetDay(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestDailyHandler_GetDay_BadParams(t *testing.T) {
	handler := NewDailyHandler(&stubDailyService{})

	cases := []string{
		"/api/v1/daily?store=999&date=2025-06-10",
		"/api/v1/daily?store=201&date=not-a-date",
		"/api/v1/daily",
	}
	for _, url := range cases {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		handler.GetDay(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
	}
}

func TestDailyHandler_Save_PassesRequestThrough(t *testing.T) {
	stub := &stubDailyService{}
	handler := NewDailyHandler(stub)

	payload := map[string]any{
		"date":     "2025-06-10",
		"store_id": "201",
		"staff": map[string]any{
			"staff_id":     5,
			"sales_amount": 100000,
		},
		"memo": "quiet night",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/daily", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.saved)
	assert.Equal(t, "201", stub.saved.StoreID)
	require.NotNil(t, stub.saved.Staff)
	require.NotNil(t, stub.saved.Staff.SalesAmount)
	assert.Equal(t, 100000, *stub.saved.Staff.SalesAmount)
	assert.Nil(t, stub.saved.Staff.CreditAmount, "absent fields stay nil")
}

func TestDailyHandler_Save_InvalidBody(t *testing.T) {
	handler := NewDailyHandler(&stubDailyService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/daily", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDailyHandler_Save_ValidationError(t *testing.T) {
	handler := NewDailyHandler(&stubDailyService{})

	raw, err := json.Marshal(map[string]any{"date": "06/10/2025", "store_id": "201"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/daily", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.Save(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Details, "date")
}
