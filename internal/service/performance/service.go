package performance

import (
	"context"
	"time"

	"github.com/teppen-ops/venue-backend/internal/domain/performance"
	"github.com/teppen-ops/venue-backend/internal/domain/salary"
	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
)

type PerformanceServiceImpl struct {
	staffResultRepo staffresult.StaffResultRepository
	staffRepo       staff.StaffRepository
}

func NewPerformanceService(
	staffResultRepo staffresult.StaffResultRepository,
	staffRepo staff.StaffRepository,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		staffResultRepo: staffResultRepo,
		staffRepo:       staffRepo,
	}
}

func (s *PerformanceServiceImpl) GetMonthly(ctx context.Context, staffID, year, month int, storeID string) (performance.PerformanceResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	from := first.Format("2006-01-02")
	to := first.AddDate(0, 1, -1).Format("2006-01-02")

	rows, err := s.staffResultRepo.ListByStaffRange(ctx, staffID, from, to)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}
	if storeID != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if r.StoreID == storeID {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	resp := performance.PerformanceResponse{
		StaffID:   staffID,
		StaffName: member.Name,
		Year:      year,
		Month:     month,
		StoreID:   storeID,
		Days:      make([]performance.DayRow, 0, len(rows)),
	}

	days := make(map[string]struct{})
	for _, r := range rows {
		resp.Days = append(resp.Days, performance.DayRow{
			Date:               r.Date,
			StoreID:            r.StoreID,
			SalesAmount:        r.SalesAmount,
			CreditAmount:       r.CreditAmount,
			ShishaCount:        r.ShishaCount,
			Groups:             r.Groups,
			Customers:          r.Customers,
			BaseSalary:         r.BaseSalary,
			ChampagneDeduction: r.ChampagneDeduction,
			PaidSalary:         r.PaidSalary,
			FractionCut:        r.FractionCut,
		})

		days[r.Date] = struct{}{}
		resp.Summary.TotalGroups += r.Groups
		resp.Summary.TotalCustomers += r.Customers
		resp.Summary.TotalSales += r.SalesAmount
		resp.Summary.TotalCredit += r.CreditAmount
		resp.Summary.TotalShisha += r.ShishaCount
		resp.Summary.TotalBaseSalary += r.BaseSalary
		resp.Summary.TotalDeduction += r.ChampagneDeduction
		resp.Summary.TotalFractionCut += r.FractionCut
		resp.Summary.TotalPaidSalary += r.PaidSalary
	}

	resp.Summary.WorkDays = len(days)
	if resp.Summary.WorkDays > 0 {
		// Average payout per worked day, floored. A month of deductions can
		// leave the paid total negative, so this rounds toward -inf rather
		// than truncating.
		resp.Summary.DailyPaid = salary.FloorDiv(resp.Summary.TotalPaidSalary, resp.Summary.WorkDays)
	}

	return resp, nil
}
