package performance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
)

type fakeStaffRepo struct {
	staff map[int]staff.Staff
}

func (r *fakeStaffRepo) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	return nil, nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id int) (staff.Staff, error) {
	m, ok := r.staff[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (r *fakeStaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	return s, nil
}

func (r *fakeStaffRepo) UpdateName(ctx context.Context, id int, name string) error { return nil }

func (r *fakeStaffRepo) UpdateStores(ctx context.Context, id int, stores []string) error {
	return nil
}

func (r *fakeStaffRepo) Deactivate(ctx context.Context, id int) error { return nil }

func (r *fakeStaffRepo) ReassignID(ctx context.Context, fromID, toID int) error { return nil }

type fakeStaffResultRepo struct {
	rows []staffresult.StaffResult
}

func (r *fakeStaffResultRepo) Upsert(ctx context.Context, row staffresult.StaffResult) error {
	r.rows = append(r.rows, row)
	return nil
}

func (r *fakeStaffResultRepo) GetByStaffDay(ctx context.Context, staffID int, storeID, date string) (*staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) ListByStoreDay(ctx context.Context, storeID, date string) ([]staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) ListByStaffRange(ctx context.Context, staffID int, from, to string) ([]staffresult.StaffResult, error) {
	var out []staffresult.StaffResult
	for _, row := range r.rows {
		if row.StaffID == staffID && row.Date >= from && row.Date <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeStaffResultRepo) ListByRange(ctx context.Context, storeID, from, to string) ([]staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) DeleteByStaffDay(ctx context.Context, staffID int, storeID, date string) error {
	return nil
}

func TestPerformanceService_GetMonthly(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{staff: map[int]staff.Staff{7: {ID: 7, Name: "Aoi", IsActive: true}}}
	resultRepo := &fakeStaffResultRepo{rows: []staffresult.StaffResult{
		{StaffID: 7, StoreID: store.Teppen, Date: "2025-06-05", SalesAmount: 100000, BaseSalary: 45000, ChampagneDeduction: 2300, PaidSalary: 42000, FractionCut: 0, Groups: 3},
		{StaffID: 7, StoreID: store.Store201, Date: "2025-06-07", SalesAmount: 50500, BaseSalary: 22725, PaidSalary: 22000, FractionCut: 725, Groups: 2},
		// Same staff, outside the month: excluded.
		{StaffID: 7, StoreID: store.Teppen, Date: "2025-07-01", SalesAmount: 90000, BaseSalary: 40500, PaidSalary: 40000},
		// Another staff member: excluded.
		{StaffID: 8, StoreID: store.Teppen, Date: "2025-06-05", SalesAmount: 70000, BaseSalary: 31500, PaidSalary: 31000},
	}}

	service := NewPerformanceService(resultRepo, staffRepo)

	resp, err := service.GetMonthly(ctx, 7, 2025, 6, "")
	require.NoError(t, err)

	assert.Equal(t, "Aoi", resp.StaffName)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, 2, resp.Summary.WorkDays)
	assert.Equal(t, 150500, resp.Summary.TotalSales)
	assert.Equal(t, 67725, resp.Summary.TotalBaseSalary)
	assert.Equal(t, 64000, resp.Summary.TotalPaidSalary)
	assert.Equal(t, 2300, resp.Summary.TotalDeduction)
	assert.Equal(t, 725, resp.Summary.TotalFractionCut)
	assert.Equal(t, 64000/2, resp.Summary.DailyPaid)
}

func TestPerformanceService_GetMonthly_StoreFilter(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{staff: map[int]staff.Staff{7: {ID: 7, Name: "Aoi", IsActive: true}}}
	resultRepo := &fakeStaffResultRepo{rows: []staffresult.StaffResult{
		{StaffID: 7, StoreID: store.Teppen, Date: "2025-06-05", PaidSalary: 42000},
		{StaffID: 7, StoreID: store.Store201, Date: "2025-06-07", PaidSalary: 22000},
	}}

	service := NewPerformanceService(resultRepo, staffRepo)

	resp, err := service.GetMonthly(ctx, 7, 2025, 6, store.Teppen)
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, store.Teppen, resp.Days[0].StoreID)
	assert.Equal(t, 42000, resp.Summary.TotalPaidSalary)
	assert.Equal(t, 1, resp.Summary.WorkDays)
}

func TestPerformanceService_GetMonthly_NegativePaidFloorsDailyAverage(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{staff: map[int]staff.Staff{7: {ID: 7, Name: "Aoi", IsActive: true}}}
	// Deductions outweighed the base both days; the carried payouts are
	// negative and their daily average rounds down, not toward zero.
	resultRepo := &fakeStaffResultRepo{rows: []staffresult.StaffResult{
		{StaffID: 7, StoreID: store.Store202, Date: "2025-06-05", ChampagneDeduction: 4000, PaidSalary: -4000},
		{StaffID: 7, StoreID: store.Store202, Date: "2025-06-07", ChampagneDeduction: 1000, PaidSalary: -1000},
	}}

	service := NewPerformanceService(resultRepo, staffRepo)

	resp, err := service.GetMonthly(ctx, 7, 2025, 6, "")
	require.NoError(t, err)

	assert.Equal(t, -5000, resp.Summary.TotalPaidSalary)
	assert.Equal(t, -2500, resp.Summary.DailyPaid)

	resultRepo.rows = append(resultRepo.rows, staffresult.StaffResult{
		StaffID: 7, StoreID: store.Store202, Date: "2025-06-09", PaidSalary: 0,
	})
	resp, err = service.GetMonthly(ctx, 7, 2025, 6, "")
	require.NoError(t, err)
	assert.Equal(t, -1667, resp.Summary.DailyPaid, "-5000/3 floors to -1667")
}

func TestPerformanceService_GetMonthly_UnknownStaff(t *testing.T) {
	ctx := context.Background()
	service := NewPerformanceService(&fakeStaffResultRepo{}, &fakeStaffRepo{staff: map[int]staff.Staff{}})

	_, err := service.GetMonthly(ctx, 99, 2025, 6, "")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestPerformanceService_GetMonthly_NoRows(t *testing.T) {
	ctx := context.Background()
	staffRepo := &fakeStaffRepo{staff: map[int]staff.Staff{7: {ID: 7, Name: "Aoi", IsActive: true}}}
	service := NewPerformanceService(&fakeStaffResultRepo{}, staffRepo)

	resp, err := service.GetMonthly(ctx, 7, 2025, 6, "")
	require.NoError(t, err)

	assert.Empty(t, resp.Days)
	assert.Equal(t, 0, resp.Summary.WorkDays)
	assert.Equal(t, 0, resp.Summary.DailyPaid, "no division by zero on an empty month")
}
