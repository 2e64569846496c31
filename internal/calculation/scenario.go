package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// Work-mode lifestyle defaults, applied when no explicit RTO policy is
// known for an offer.
var workModeDefaults = map[domain.WorkMode]struct {
	Bonus   decimal.Decimal
	Penalty decimal.Decimal
}{
	domain.WorkModeRemote: {decimal.NewFromInt(8000), decimal.Zero},
	domain.WorkModeHybrid: {decimal.NewFromInt(3000), decimal.NewFromInt(3600)},
	domain.WorkModeOnsite: {decimal.Zero, decimal.NewFromInt(6000)},
}

// rtoPenaltyPerDay is the annual penalty per weekly in-office day.
var rtoPenaltyPerDay = decimal.NewFromInt(1200)

// ScenarioInput carries everything the value calculation needs for one
// offer, with optional knobs covering both per-offer overrides and the
// global-controls feature set. All amounts are annual unless named
// otherwise.
type ScenarioInput struct {
	BaseSalary     decimal.Decimal
	Bonus          decimal.Decimal
	SignOn         decimal.Decimal
	AnnualBenefits decimal.Decimal
	AnnualEquity   decimal.Decimal

	// EquityRealizationPercent scales the taxed equity for liquidity
	// uncertainty. Nil means 100%.
	EquityRealizationPercent *decimal.Decimal

	WorkMode domain.WorkMode
	// RTODaysPerWeek nil means the policy is unknown and the work-mode
	// default penalty applies. An explicit 0 is a valid value: zero
	// in-office days, zero penalty.
	RTODaysPerWeek *int

	AnnualCommuteCost decimal.Decimal
	AnnualFreeFood    decimal.Decimal
	WellnessBonus     decimal.Decimal
	WLBBonus          decimal.Decimal

	Rates       domain.UsedTaxRates
	COLIndex    decimal.Decimal
	MonthlyRent decimal.Decimal
}

// ScenarioValue is the calculation result for one offer.
type ScenarioValue struct {
	AdjustedValue       decimal.Decimal
	LifestyleAdjustment decimal.Decimal
	Breakdown           domain.ValueBreakdown
}

// afterTax applies a percentage rate to an amount.
func afterTax(amount, ratePercent decimal.Decimal) decimal.Decimal {
	keep := decimal.NewFromInt(100).Sub(ratePercent).Div(decimal.NewFromInt(100))
	return amount.Mul(keep)
}

// CalculateScenarioValue produces the after-tax, cost-of-living
// normalized, lifestyle-adjusted, rent-deducted annual value of one
// offer. Pure function; always returns finite values.
func CalculateScenarioValue(in ScenarioInput) ScenarioValue {
	taxedBase := afterTax(in.BaseSalary, in.Rates.Base)
	taxedBenefits := afterTax(in.AnnualBenefits, in.Rates.Base)
	taxedBonus := afterTax(in.Bonus.Add(in.SignOn), in.Rates.Bonus)
	taxedEquity := afterTax(in.AnnualEquity, in.Rates.Equity)
	if in.EquityRealizationPercent != nil {
		taxedEquity = taxedEquity.Mul(*in.EquityRealizationPercent).Div(decimal.NewFromInt(100))
	}

	afterTaxTotal := taxedBase.Add(taxedBenefits).Add(taxedBonus).Add(taxedEquity)
	purchasingPower := afterTaxTotal.Mul(decimal.NewFromInt(100)).Div(GuardIndex(in.COLIndex))

	defaults := workModeDefaults[in.WorkMode]
	workModeBonus := defaults.Bonus
	rtoPenalty := defaults.Penalty
	if in.RTODaysPerWeek != nil {
		rtoPenalty = rtoPenaltyPerDay.Mul(decimal.NewFromInt(int64(*in.RTODaysPerWeek)))
	}

	lifestyle := workModeBonus.
		Add(in.AnnualFreeFood).
		Add(in.WellnessBonus).
		Add(in.WLBBonus).
		Sub(rtoPenalty).
		Sub(in.AnnualCommuteCost)

	annualRent := in.MonthlyRent.Mul(twelve)
	adjusted := purchasingPower.Add(lifestyle).Sub(annualRent)

	return ScenarioValue{
		AdjustedValue:       adjusted,
		LifestyleAdjustment: lifestyle,
		Breakdown: domain.ValueBreakdown{
			TaxedBase:       taxedBase,
			TaxedBenefits:   taxedBenefits,
			TaxedBonus:      taxedBonus,
			TaxedEquity:     taxedEquity,
			PurchasingPower: purchasingPower,
			WorkModeBonus:   workModeBonus,
			FreeFoodBonus:   in.AnnualFreeFood,
			WellnessBonus:   in.WellnessBonus,
			WLBBonus:        in.WLBBonus,
			RTOPenalty:      rtoPenalty,
			CommutePenalty:  in.AnnualCommuteCost,
			AnnualRent:      annualRent,
		},
	}
}
