package domain

import "github.com/shopspring/decimal"

// UsedTaxRates are the effective percentage rates a row was taxed at,
// whether estimated or overridden per offer.
type UsedTaxRates struct {
	Base   decimal.Decimal `json:"base"`
	Bonus  decimal.Decimal `json:"bonus"`
	Equity decimal.Decimal `json:"equity"`
}

// ValueBreakdown itemizes the components behind a row's adjusted value.
type ValueBreakdown struct {
	TaxedBase       decimal.Decimal `json:"taxed_base"`
	TaxedBenefits   decimal.Decimal `json:"taxed_benefits"`
	TaxedBonus      decimal.Decimal `json:"taxed_bonus"`
	TaxedEquity     decimal.Decimal `json:"taxed_equity"`
	PurchasingPower decimal.Decimal `json:"purchasing_power"`
	WorkModeBonus   decimal.Decimal `json:"work_mode_bonus"`
	FreeFoodBonus   decimal.Decimal `json:"free_food_bonus"`
	WellnessBonus   decimal.Decimal `json:"wellness_bonus"`
	WLBBonus        decimal.Decimal `json:"wlb_bonus"`
	RTOPenalty      decimal.Decimal `json:"rto_penalty"`
	CommutePenalty  decimal.Decimal `json:"commute_penalty"`
	AnnualRent      decimal.Decimal `json:"annual_rent"`
}

// RowDeltas are per-category differences against the current (baseline)
// row. The baseline row's own deltas are always exactly zero; when no
// baseline exists the deltas are against an implicit zero-valued row.
type RowDeltas struct {
	TotalComp      decimal.Decimal `json:"total_comp"`
	AfterTaxBase   decimal.Decimal `json:"after_tax_base"`
	AfterTaxBonus  decimal.Decimal `json:"after_tax_bonus"`
	AfterTaxEquity decimal.Decimal `json:"after_tax_equity"`
	TimeOffDays    decimal.Decimal `json:"time_off_days"`
	AdjustedValue  decimal.Decimal `json:"adjusted_value"`
}

// ScenarioRow is one offer fully resolved for comparison: location, COL,
// rent, tax rates, after-tax figures, and the adjusted value it is ranked
// by. Rows are derived, never persisted, and recomputed from scratch on
// every input change.
type ScenarioRow struct {
	OfferID   string    `json:"offer_id"`
	Kind      OfferKind `json:"kind"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	IsCurrent bool      `json:"is_current"`

	Location    string          `json:"location"`
	COLIndex    decimal.Decimal `json:"col_index"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	WorkMode    WorkMode        `json:"work_mode"`

	UsedTaxRates UsedTaxRates `json:"used_tax_rates"`

	TotalComp      decimal.Decimal `json:"total_comp"`
	AfterTaxBase   decimal.Decimal `json:"after_tax_base"`
	AfterTaxBonus  decimal.Decimal `json:"after_tax_bonus"`
	AfterTaxEquity decimal.Decimal `json:"after_tax_equity"`
	TimeOffDays    int             `json:"time_off_days"`

	AdjustedValue       decimal.Decimal `json:"adjusted_value"`
	LifestyleAdjustment decimal.Decimal `json:"lifestyle_adjustment"`
	Breakdown           ValueBreakdown  `json:"breakdown"`

	Deltas RowDeltas `json:"deltas"`
}

// Comparison is the ranked result of one full computation pass.
type Comparison struct {
	ReferenceLocation string          `json:"reference_location"`
	BaselineCOL       decimal.Decimal `json:"baseline_col"`
	BaselineRent      decimal.Decimal `json:"baseline_rent"`
	MaritalStatus     MaritalStatus   `json:"marital_status"`
	Rows              []*ScenarioRow  `json:"rows"`
}

// RowMap keys the comparison's rows by offer ID for the stable-output
// diff.
func (c *Comparison) RowMap() map[string]*ScenarioRow {
	m := make(map[string]*ScenarioRow, len(c.Rows))
	for _, r := range c.Rows {
		m[r.OfferID] = r
	}
	return m
}
