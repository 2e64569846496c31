package domain

import "github.com/shopspring/decimal"

// MaritalStatus is the filing status used by the tax estimator. Married
// filing jointly gets its own federal schedule; every other status uses
// the single schedule.
type MaritalStatus string

const (
	MaritalSingle          MaritalStatus = "SINGLE"
	MaritalMarriedJointly  MaritalStatus = "MARRIED_JOINTLY"
	MaritalMarriedSeparate MaritalStatus = "MARRIED_SEPARATELY"
	MaritalHeadOfHousehold MaritalStatus = "HEAD_OF_HOUSEHOLD"
)

// MaritalStatusOption is one selectable filing status.
type MaritalStatusOption struct {
	Code  MaritalStatus `json:"code"`
	Label string        `json:"label"`
}

// ReferenceData holds the lookup tables the estimators resolve locations
// and rates against. It is fetched once per session; any field the fetch
// leaves empty is backfilled from the built-in defaults, so consumers may
// assume every map is populated and every index is positive.
type ReferenceData struct {
	CityCostOfLiving     map[string]decimal.Decimal `json:"city_cost_of_living"`
	StateCOLBase         map[string]decimal.Decimal `json:"state_col_base"`
	StateTaxRate         map[string]decimal.Decimal `json:"state_tax_rate"`
	StateNameToAbbr      map[string]string          `json:"state_name_to_abbr"`
	MaritalStatusOptions []MaritalStatusOption      `json:"marital_status_options"`
}

// RentEstimate is the external rent service's answer for one location.
// MonthlyRentEstimate may be nil (no data, or the fetch errored); the
// calculator consumes a nil estimate as 0 rent.
type RentEstimate struct {
	Provider            string           `json:"provider"`
	MatchedArea         string           `json:"matched_area,omitempty"`
	MonthlyRentEstimate *decimal.Decimal `json:"monthly_rent_estimate,omitempty"`
	FMRYear             *int             `json:"fmr_year,omitempty"`
	LastUpdated         string           `json:"last_updated,omitempty"`
	Error               string           `json:"error,omitempty"`
}

// MonthlyRent returns the estimate's rent figure, treating an absent or
// errored estimate as 0.
func (r *RentEstimate) MonthlyRent() decimal.Decimal {
	if r == nil || r.MonthlyRentEstimate == nil {
		return decimal.Zero
	}
	return *r.MonthlyRentEstimate
}
