package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// TAX ESTIMATION ASSUMPTIONS:
//
// 1. Federal brackets: 2025 schedules, applied directly to gross income
//    floored at $20,000, with no standard deduction. This is a comparison
//    estimator, not a filing tool.
// 2. Payroll taxes: Social Security 6.2% capped at the 2025 wage base,
//    Medicare 1.45% uncapped.
// 3. State tax: flat effective percentage by state abbreviation; states
//    with no table entry (no-income-tax states, unmatched locations)
//    contribute 0.
// 4. The effective rate is clamped to [15, 55]. Bonus and equity rates
//    are derived from the base rate (+4 and +6 points, same cap).

const (
	// MinEffectiveRate and MaxEffectiveRate bound the estimated base
	// rate in percent.
	MinEffectiveRate = 15
	MaxEffectiveRate = 55

	// incomeFloor keeps the bracket math and the rate denominator away
	// from degenerate low incomes.
	incomeFloor = 20000

	bonusRateSpread  = 4
	equityRateSpread = 6
)

// TaxBracket is one federal bracket over [Min, Max] at Rate.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

func bracket(min, max int64, rate float64) TaxBracket {
	return TaxBracket{decimal.NewFromInt(min), decimal.NewFromInt(max), decimal.NewFromFloat(rate)}
}

// singleBrackets2025 is the schedule for every filing status except
// married filing jointly.
func singleBrackets2025() []TaxBracket {
	return []TaxBracket{
		bracket(0, 11925, 0.10),
		bracket(11925, 48475, 0.12),
		bracket(48475, 103350, 0.22),
		bracket(103350, 197300, 0.24),
		bracket(197300, 250525, 0.32),
		bracket(250525, 626350, 0.35),
		bracket(626350, 999999999, 0.37),
	}
}

func marriedJointBrackets2025() []TaxBracket {
	return []TaxBracket{
		bracket(0, 23850, 0.10),
		bracket(23850, 96950, 0.12),
		bracket(96950, 206700, 0.22),
		bracket(206700, 394600, 0.24),
		bracket(394600, 501050, 0.32),
		bracket(501050, 751600, 0.35),
		bracket(751600, 999999999, 0.37),
	}
}

// EffectiveTaxEstimator derives effective base/bonus/equity tax rates
// from income, filing status, and a free-text location. It never fails:
// missing tables behave as empty and unmatched locations simply
// contribute no state tax.
type EffectiveTaxEstimator struct {
	BracketsSingle       []TaxBracket
	BracketsMarriedJoint []TaxBracket

	SSWageBase   decimal.Decimal
	SSRate       decimal.Decimal
	MedicareRate decimal.Decimal

	StateTaxRate    map[string]decimal.Decimal
	StateNameToAbbr map[string]string
}

// NewEffectiveTaxEstimator builds an estimator over the given reference
// tables. The tables are assumed to be default-merged (see refdata);
// a nil ReferenceData is tolerated.
func NewEffectiveTaxEstimator(ref *domain.ReferenceData) *EffectiveTaxEstimator {
	est := &EffectiveTaxEstimator{
		BracketsSingle:       singleBrackets2025(),
		BracketsMarriedJoint: marriedJointBrackets2025(),
		SSWageBase:           decimal.NewFromInt(176100),
		SSRate:               decimal.NewFromFloat(0.062),
		MedicareRate:         decimal.NewFromFloat(0.0145),
	}
	if ref != nil {
		est.StateTaxRate = ref.StateTaxRate
		est.StateNameToAbbr = ref.StateNameToAbbr
	}
	return est
}

// progressiveTax applies a bracket schedule to taxable income.
func progressiveTax(brackets []TaxBracket, taxable decimal.Decimal) decimal.Decimal {
	var total decimal.Decimal
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		inBracket := decimal.Min(taxable, b.Max).Sub(b.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			total = total.Add(inBracket.Mul(b.Rate))
		}
	}
	return total
}

// StateRateFor resolves the flat state tax percentage for a location,
// returning 0 when no state matches.
func (e *EffectiveTaxEstimator) StateRateFor(location string) decimal.Decimal {
	abbr := ResolveStateAbbr(location, e.StateNameToAbbr)
	if abbr == "" {
		return decimal.Zero
	}
	if rate, ok := e.StateTaxRate[abbr]; ok {
		return rate
	}
	return decimal.Zero
}

// EstimateBaseRate returns the effective combined federal + payroll +
// state rate in percent, clamped to [MinEffectiveRate, MaxEffectiveRate].
// The same floored income is used for the schedule and the denominator,
// so any income >= 0 is safe.
func (e *EffectiveTaxEstimator) EstimateBaseRate(grossIncome decimal.Decimal, status domain.MaritalStatus, location string) decimal.Decimal {
	income := decimal.Max(grossIncome, decimal.NewFromInt(incomeFloor))

	brackets := e.BracketsSingle
	if status == domain.MaritalMarriedJointly {
		brackets = e.BracketsMarriedJoint
	}
	federal := progressiveTax(brackets, income)

	ssTax := decimal.Min(income, e.SSWageBase).Mul(e.SSRate)
	medicareTax := income.Mul(e.MedicareRate)
	stateTax := income.Mul(e.StateRateFor(location)).Div(decimal.NewFromInt(100))

	total := federal.Add(ssTax).Add(medicareTax).Add(stateTax)
	rate := total.Div(income).Mul(decimal.NewFromInt(100))

	return clampRate(rate)
}

// EstimateRates returns the base rate plus the derived bonus and equity
// rates for one offer.
func (e *EffectiveTaxEstimator) EstimateRates(grossIncome decimal.Decimal, status domain.MaritalStatus, location string) domain.UsedTaxRates {
	return RatesFromBase(e.EstimateBaseRate(grossIncome, status, location))
}

// RatesFromBase derives the bonus (+4) and equity (+6) rates from a base
// rate, capping all three at MaxEffectiveRate. Per-offer rate overrides
// go through the same derivation.
func RatesFromBase(base decimal.Decimal) domain.UsedTaxRates {
	top := decimal.NewFromInt(MaxEffectiveRate)
	return domain.UsedTaxRates{
		Base:   decimal.Min(base, top),
		Bonus:  decimal.Min(base.Add(decimal.NewFromInt(bonusRateSpread)), top),
		Equity: decimal.Min(base.Add(decimal.NewFromInt(equityRateSpread)), top),
	}
}

func clampRate(rate decimal.Decimal) decimal.Decimal {
	rate = decimal.Max(rate, decimal.NewFromInt(MinEffectiveRate))
	return decimal.Min(rate, decimal.NewFromInt(MaxEffectiveRate))
}
