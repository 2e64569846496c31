package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/internal/refdata"
)

func newTestEstimator() *EffectiveTaxEstimator {
	return NewEffectiveTaxEstimator(refdata.Defaults())
}

// TestEffectiveRateBounds checks the [15, 55] clamp across a sweep of
// incomes and filing statuses.
func TestEffectiveRateBounds(t *testing.T) {
	est := newTestEstimator()

	incomes := []int64{0, 1, 15000, 20000, 50000, 100000, 250000, 1000000, 10000000}
	statuses := []domain.MaritalStatus{
		domain.MaritalSingle,
		domain.MaritalMarriedJointly,
		domain.MaritalMarriedSeparate,
		domain.MaritalHeadOfHousehold,
	}
	locations := []string{"", "Austin, TX", "San Francisco, CA", "Portland, Oregon", "Nowhere"}

	for _, income := range incomes {
		for _, status := range statuses {
			for _, loc := range locations {
				rate := est.EstimateBaseRate(decimal.NewFromInt(income), status, loc)
				assert.True(t, rate.GreaterThanOrEqual(decimal.NewFromInt(MinEffectiveRate)),
					"income=%d status=%s loc=%q rate=%s below floor", income, status, loc, rate)
				assert.True(t, rate.LessThanOrEqual(decimal.NewFromInt(MaxEffectiveRate)),
					"income=%d status=%s loc=%q rate=%s above cap", income, status, loc, rate)
			}
		}
	}
}

// TestEffectiveRateComposition spot-checks the federal + payroll + state
// composition at $50,000 single with no state tax.
func TestEffectiveRateComposition(t *testing.T) {
	est := newTestEstimator()

	// Federal: 11925*0.10 + 36550*0.12 + 1525*0.22 = 5914
	// SS: 3100, Medicare: 725 => 9739 / 50000 = 19.478%
	rate := est.EstimateBaseRate(decimal.NewFromInt(50000), domain.MaritalSingle, "Houston, TX")
	expected := decimal.NewFromFloat(19.478)
	diff := rate.Sub(expected).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
		"expected ~%s, got %s", expected, rate)
}

// TestNoStateTaxVersusCalifornia is the Texas-vs-California scenario:
// same income and status, but Texas carries no state component.
func TestNoStateTaxVersusCalifornia(t *testing.T) {
	est := newTestEstimator()
	income := decimal.NewFromInt(200000)

	texas := est.EstimateBaseRate(income, domain.MaritalSingle, "Austin, Texas")
	california := est.EstimateBaseRate(income, domain.MaritalSingle, "San Francisco, California")

	assert.True(t, texas.LessThan(california),
		"texas %s should be below california %s", texas, california)
	// The gap is exactly the 8.5% flat state rate.
	gap := california.Sub(texas)
	assert.True(t, gap.Sub(decimal.NewFromFloat(8.5)).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"state gap should be 8.5, got %s", gap)
}

// TestMarriedJointBelowSingle verifies the wider MFJ brackets produce a
// lower effective rate at the same income.
func TestMarriedJointBelowSingle(t *testing.T) {
	est := newTestEstimator()
	income := decimal.NewFromInt(200000)

	single := est.EstimateBaseRate(income, domain.MaritalSingle, "Seattle, WA")
	married := est.EstimateBaseRate(income, domain.MaritalMarriedJointly, "Seattle, WA")
	assert.True(t, married.LessThan(single), "married %s should be below single %s", married, single)
}

// TestZeroIncomeUsesFloor ensures degenerate incomes are floored rather
// than dividing by zero.
func TestZeroIncomeUsesFloor(t *testing.T) {
	est := newTestEstimator()

	zero := est.EstimateBaseRate(decimal.Zero, domain.MaritalSingle, "")
	floored := est.EstimateBaseRate(decimal.NewFromInt(20000), domain.MaritalSingle, "")
	assert.True(t, zero.Equal(floored), "zero income should behave as the $20k floor")
}

func TestRatesFromBase(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		bonus  float64
		equity float64
	}{
		{"mid range", 30, 34, 36},
		{"bonus capped", 52, 55, 55},
		{"equity capped", 50, 54, 55},
		{"all capped", 60, 55, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates := RatesFromBase(decimal.NewFromFloat(tt.base))
			assert.True(t, rates.Bonus.Equal(decimal.NewFromFloat(tt.bonus)),
				"bonus: expected %v, got %s", tt.bonus, rates.Bonus)
			assert.True(t, rates.Equity.Equal(decimal.NewFromFloat(tt.equity)),
				"equity: expected %v, got %s", tt.equity, rates.Equity)
		})
	}
}

func TestStateRateResolution(t *testing.T) {
	est := newTestEstimator()

	tests := []struct {
		name     string
		location string
		rate     float64
	}{
		{"trailing abbreviation", "San Jose, CA", 8.5},
		{"lowercase abbreviation", "san jose, ca", 8.5},
		{"full state name", "somewhere in California", 8.5},
		{"united states suffix", "San Francisco, CA, United States", 8.5},
		{"no income tax state", "Austin, TX", 0},
		{"west virginia not shadowed", "Morgantown, West Virginia", 5.12},
		{"unmatched", "Toronto", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := est.StateRateFor(tt.location)
			assert.True(t, rate.Equal(decimal.NewFromFloat(tt.rate)),
				"expected %v, got %s", tt.rate, rate)
		})
	}
}
