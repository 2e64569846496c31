package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// FallbackCity anchors the comparison when no offer carries a location.
const FallbackCity = "Austin, TX"

// RentLookup returns the rent estimate for a location, or nil when no
// rent service is available.
type RentLookup func(location string) *domain.RentEstimate

// ComparisonInput is one full recompute request: the merged set of real
// and simulated offers plus the session's filing status.
type ComparisonInput struct {
	MaritalStatus domain.MaritalStatus
	Offers        []*domain.Offer
	Rent          RentLookup
}

// referenceLocation picks the shared location rows without one fall back
// to: the current offer's location, else the first offer with a
// non-empty location, else the hardcoded fallback city.
func (e *ComparisonEngine) referenceLocation(offers []*domain.Offer) string {
	for _, o := range offers {
		if o.IsCurrent && o.Location() != "" {
			return o.Location()
		}
	}
	for _, o := range offers {
		if o.Location() != "" {
			return o.Location()
		}
	}
	return e.FallbackCity
}

// estimateRent scales the baseline rent by the ratio of the row's COL
// index to the baseline COL index. Never negative.
func estimateRent(baselineRent, rowCOL, baselineCOL decimal.Decimal) decimal.Decimal {
	rent := baselineRent.Mul(rowCOL).Div(GuardIndex(baselineCOL))
	return decimal.Max(rent, decimal.Zero)
}

// buildRow resolves one offer into a comparison row. Uniform for both
// offer variants.
func (e *ComparisonEngine) buildRow(o *domain.Offer, status domain.MaritalStatus, refLocation string, baselineCOL, baselineRent decimal.Decimal) *domain.ScenarioRow {
	location := o.Location()
	if location == "" {
		location = refLocation
	}
	colIndex := e.COL.Resolve(location)

	monthlyRent := estimateRent(baselineRent, colIndex, baselineCOL)
	if o.MonthlyRentOverride != nil {
		monthlyRent = decimal.Max(*o.MonthlyRentOverride, decimal.Zero)
	}

	annualBenefits := AnnualizeBenefits(o.BenefitItems)
	annualEquity := o.Equity.ResolvedAnnual()
	gross := o.BaseSalary.Add(o.Bonus).Add(o.SignOn).Add(annualBenefits).Add(annualEquity)

	var rates domain.UsedTaxRates
	if o.TaxRateOverride != nil {
		rates = RatesFromBase(clampRate(*o.TaxRateOverride))
	} else {
		rates = e.Tax.EstimateRates(gross, status, location)
	}

	var commute, freeFood decimal.Decimal
	if o.Application != nil {
		commute = AnnualizeCost(o.Application.CommuteCost)
		freeFood = AnnualizeCost(o.Application.FreeFoodValue)
	}

	value := CalculateScenarioValue(ScenarioInput{
		BaseSalary:               o.BaseSalary,
		Bonus:                    o.Bonus,
		SignOn:                   o.SignOn,
		AnnualBenefits:           annualBenefits,
		AnnualEquity:             annualEquity,
		EquityRealizationPercent: o.Equity.RealizationPercent,
		WorkMode:                 o.EffectiveWorkMode(),
		RTODaysPerWeek:           o.EffectiveRTODays(),
		AnnualCommuteCost:        commute,
		AnnualFreeFood:           freeFood,
		WellnessBonus:            o.WellnessBonus,
		WLBBonus:                 o.WLBBonus,
		Rates:                    rates,
		COLIndex:                 colIndex,
		MonthlyRent:              monthlyRent,
	})

	return &domain.ScenarioRow{
		OfferID:             o.ID,
		Kind:                o.Kind,
		Company:             o.Company(),
		Role:                o.Role(),
		IsCurrent:           o.IsCurrent,
		Location:            location,
		COLIndex:            colIndex,
		MonthlyRent:         monthlyRent,
		WorkMode:            o.EffectiveWorkMode(),
		UsedTaxRates:        rates,
		TotalComp:           gross,
		AfterTaxBase:        value.Breakdown.TaxedBase,
		AfterTaxBonus:       value.Breakdown.TaxedBonus,
		AfterTaxEquity:      value.Breakdown.TaxedEquity,
		TimeOffDays:         o.PTODays + o.HolidayDays,
		AdjustedValue:       value.AdjustedValue,
		LifestyleAdjustment: value.LifestyleAdjustment,
		Breakdown:           value.Breakdown,
	}
}

// applyDeltas fills every row's per-category deltas against the first
// row flagged current. The baseline's own deltas are forced to exactly
// zero; with no baseline the deltas are against an implicit zero row, so
// they degrade to absolute values.
func applyDeltas(rows []*domain.ScenarioRow) {
	var baseline *domain.ScenarioRow
	for _, r := range rows {
		if r.IsCurrent {
			baseline = r
			break
		}
	}

	base := domain.RowDeltas{}
	if baseline != nil {
		base = domain.RowDeltas{
			TotalComp:      baseline.TotalComp,
			AfterTaxBase:   baseline.AfterTaxBase,
			AfterTaxBonus:  baseline.AfterTaxBonus,
			AfterTaxEquity: baseline.AfterTaxEquity,
			TimeOffDays:    decimal.NewFromInt(int64(baseline.TimeOffDays)),
			AdjustedValue:  baseline.AdjustedValue,
		}
	}

	for _, r := range rows {
		if r == baseline {
			r.Deltas = domain.RowDeltas{}
			continue
		}
		r.Deltas = domain.RowDeltas{
			TotalComp:      r.TotalComp.Sub(base.TotalComp),
			AfterTaxBase:   r.AfterTaxBase.Sub(base.AfterTaxBase),
			AfterTaxBonus:  r.AfterTaxBonus.Sub(base.AfterTaxBonus),
			AfterTaxEquity: r.AfterTaxEquity.Sub(base.AfterTaxEquity),
			TimeOffDays:    decimal.NewFromInt(int64(r.TimeOffDays)).Sub(base.TimeOffDays),
			AdjustedValue:  r.AdjustedValue.Sub(base.AdjustedValue),
		}
	}
}

// BuildComparison runs one full deterministic recompute: resolve the
// reference location and baseline rent, build a row per offer, compute
// deltas against the current offer, and rank rows by adjusted value
// (descending, input order preserved on ties). Invalid offers are logged
// and skipped, never fatal.
func (e *ComparisonEngine) BuildComparison(in ComparisonInput) *domain.Comparison {
	refLocation := e.referenceLocation(in.Offers)
	baselineCOL := e.COL.Resolve(refLocation)

	var baselineRent decimal.Decimal
	if in.Rent != nil {
		est := in.Rent(refLocation)
		if est != nil && est.Error != "" {
			e.Logger.Debugf("rent estimate for %q unavailable: %s", refLocation, est.Error)
		}
		baselineRent = est.MonthlyRent()
	}

	rows := make([]*domain.ScenarioRow, 0, len(in.Offers))
	for _, o := range in.Offers {
		if err := o.Validate(); err != nil {
			e.Logger.Warnf("skipping offer %s: %v", o.ID, err)
			continue
		}
		rows = append(rows, e.buildRow(o, in.MaritalStatus, refLocation, baselineCOL, baselineRent))
	}

	applyDeltas(rows)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AdjustedValue.GreaterThan(rows[j].AdjustedValue)
	})

	return &domain.Comparison{
		ReferenceLocation: refLocation,
		BaselineCOL:       baselineCOL,
		BaselineRent:      baselineRent,
		MaritalStatus:     in.MaritalStatus,
		Rows:              rows,
	}
}
