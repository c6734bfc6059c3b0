// Package salary implements the pay calculation used by the daily entry
// screens and the report rollups. All amounts are integer yen.
package salary

import (
	"github.com/shopspring/decimal"
)

// CommissionRate is the sales share paid out as automatic salary.
var CommissionRate = decimal.NewFromFloat(0.45)

// Result is a fully derived salary for one staff member on one day.
type Result struct {
	AutoSalary    int
	EffectiveBase int
	PaidSalary    int
	FractionCut   int
	Deduction     int
}

// Auto returns the automatic salary for a sales figure: 45% of sales,
// rounded down to the yen.
func Auto(sales int) int {
	if sales <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(sales)).Mul(CommissionRate).Floor().IntPart())
}

// EffectiveBase picks the base the payout is computed from. A manual base
// overrides the automatic one; zero means "not entered" and falls through.
// Manual-only venues never use the automatic figure.
func EffectiveBase(manualBase, autoSalary int, manualOnly bool) int {
	if manualOnly {
		return manualBase
	}
	if manualBase > 0 {
		return manualBase
	}
	return autoSalary
}

// Paid computes the amount actually handed over: the base less the
// deduction, rounded down to the nearest 1000 yen. Rounding is toward
// negative infinity, so a deduction larger than the base yields a
// negative payout carried to the next settlement.
func Paid(base, deduction int) int {
	return FloorDiv(base-deduction, 1000) * 1000
}

// FractionCut is the sub-1000-yen remainder dropped from the base before
// any deduction. It is retained by the venue, not the staff member.
func FractionCut(base int) int {
	return base - FloorDiv(base, 1000)*1000
}

// Compute derives the full salary breakdown for one staff day.
func Compute(sales, manualBase, deduction int, manualOnly bool) Result {
	auto := Auto(sales)
	if manualOnly {
		auto = 0
	}
	base := EffectiveBase(manualBase, auto, manualOnly)
	return Result{
		AutoSalary:    auto,
		EffectiveBase: base,
		PaidSalary:    Paid(base, deduction),
		FractionCut:   FractionCut(base),
		Deduction:     deduction,
	}
}

// FloorDiv divides rounding toward negative infinity, unlike Go's
// truncated integer division. Payout math always rounds down, even when
// a deduction pushes a figure negative.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
