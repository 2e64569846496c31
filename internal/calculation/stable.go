package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// StableRows gates propagation of a recompute: when the new row map
// matches the previous one on every comparison-significant field rounded
// to whole units, the previous map reference is returned unchanged, so a
// consumer holding it sees no change. Sub-unit floating drift between
// recomputes therefore cannot feed back into the inputs that produced
// it. Pure function, no framework coupling.
func StableRows(prev, next map[string]*domain.ScenarioRow) map[string]*domain.ScenarioRow {
	if prev == nil || len(prev) != len(next) {
		return next
	}
	for id, n := range next {
		p, ok := prev[id]
		if !ok || !roundedRowEqual(p, n) {
			return next
		}
	}
	return prev
}

// roundedRowEqual compares the fields a consumer can observe, each
// rounded to the nearest whole unit: adjusted value, adjusted delta,
// after-tax base/bonus/equity, the three used tax rates, and monthly
// rent.
func roundedRowEqual(a, b *domain.ScenarioRow) bool {
	pairs := [][2]decimal.Decimal{
		{a.AdjustedValue, b.AdjustedValue},
		{a.Deltas.AdjustedValue, b.Deltas.AdjustedValue},
		{a.AfterTaxBase, b.AfterTaxBase},
		{a.AfterTaxBonus, b.AfterTaxBonus},
		{a.AfterTaxEquity, b.AfterTaxEquity},
		{a.UsedTaxRates.Base, b.UsedTaxRates.Base},
		{a.UsedTaxRates.Bonus, b.UsedTaxRates.Bonus},
		{a.UsedTaxRates.Equity, b.UsedTaxRates.Equity},
		{a.MonthlyRent, b.MonthlyRent},
	}
	for _, p := range pairs {
		if !p[0].Round(0).Equal(p[1].Round(0)) {
			return false
		}
	}
	return true
}
