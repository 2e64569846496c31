// Package refdata supplies the lookup tables behind location and tax
// resolution: a built-in snapshot used as the default, and a client that
// refreshes it from the reference-data service when one is reachable.
package refdata

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// Built-in snapshot of the reference tables. These are estimation inputs,
// not authoritative data; the remote service may override any of them.

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// defaultCityCOL maps "City, ST" to a cost-of-living index (100 =
// national average).
func defaultCityCOL() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"New York, NY":       d(187),
		"San Francisco, CA":  d(168),
		"San Jose, CA":       d(162),
		"Seattle, WA":        d(149),
		"Boston, MA":         d(148),
		"Washington, DC":     d(144),
		"Los Angeles, CA":    d(141),
		"San Diego, CA":      d(139),
		"Oakland, CA":        d(131),
		"Portland, OR":       d(114),
		"Denver, CO":         d(112),
		"Miami, FL":          d(111),
		"Chicago, IL":        d(107),
		"Salt Lake City, UT": d(104),
		"Phoenix, AZ":        d(103),
		"Philadelphia, PA":   d(101),
		"Minneapolis, MN":    d(100),
		"Atlanta, GA":        d(99),
		"Nashville, TN":      d(98),
		"Austin, TX":         d(97),
		"Raleigh, NC":        d(96),
		"Charlotte, NC":      d(95),
		"Dallas, TX":         d(95),
		"Pittsburgh, PA":     d(93),
		"Houston, TX":        d(92),
		"Columbus, OH":       d(92),
		"Detroit, MI":        d(89),
	}
}

// defaultStateCOLBase is the state-level fallback when no city matches.
func defaultStateCOLBase() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"AL": d(88), "AK": d(127), "AZ": d(103), "AR": d(87), "CA": d(142),
		"CO": d(105), "CT": d(113), "DE": d(101), "DC": d(148), "FL": d(103),
		"GA": d(91), "HI": d(184), "ID": d(102), "IL": d(94), "IN": d(91),
		"IA": d(90), "KS": d(87), "KY": d(93), "LA": d(92), "ME": d(111),
		"MD": d(116), "MA": d(146), "MI": d(91), "MN": d(94), "MS": d(85),
		"MO": d(88), "MT": d(103), "NE": d(93), "NV": d(101), "NH": d(114),
		"NJ": d(114), "NM": d(94), "NY": d(125), "NC": d(96), "ND": d(94),
		"OH": d(94), "OK": d(86), "OR": d(113), "PA": d(99), "RI": d(110),
		"SC": d(95), "SD": d(92), "TN": d(90), "TX": d(92), "UT": d(103),
		"VT": d(114), "VA": d(101), "WA": d(116), "WV": d(90), "WI": d(97),
		"WY": d(95),
	}
}

// defaultStateTaxRate is a flat effective income-tax percentage per
// state. States with no income tax have no entry, which the estimator
// treats as 0.
func defaultStateTaxRate() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"AL": d(5), "AZ": d(2.5), "AR": d(4.4), "CA": d(8.5), "CO": d(4.4),
		"CT": d(5.5), "DE": d(5.5), "DC": d(8.5), "GA": d(5.39), "HI": d(7.9),
		"ID": d(5.8), "IL": d(4.95), "IN": d(3.05), "IA": d(5.7), "KS": d(5.15),
		"KY": d(4), "LA": d(4.25), "ME": d(7.15), "MD": d(5.75), "MA": d(5),
		"MI": d(4.25), "MN": d(7.85), "MS": d(4.7), "MO": d(4.8), "MT": d(5.9),
		"NE": d(5.84), "NJ": d(6.37), "NM": d(4.9), "NY": d(6.85), "NC": d(4.5),
		"ND": d(2.5), "OH": d(3.5), "OK": d(4.75), "OR": d(9.9), "PA": d(3.07),
		"RI": d(5.99), "SC": d(6.4), "UT": d(4.65), "VT": d(7.6), "VA": d(5.75),
		"WV": d(5.12), "WI": d(6.27),
	}
}

// defaultStateNameToAbbr maps full state names to their two-letter
// abbreviations for free-text location matching.
func defaultStateNameToAbbr() map[string]string {
	return map[string]string{
		"Alabama": "AL", "Alaska": "AK", "Arizona": "AZ", "Arkansas": "AR",
		"California": "CA", "Colorado": "CO", "Connecticut": "CT",
		"Delaware": "DE", "District of Columbia": "DC", "Florida": "FL",
		"Georgia": "GA", "Hawaii": "HI", "Idaho": "ID", "Illinois": "IL",
		"Indiana": "IN", "Iowa": "IA", "Kansas": "KS", "Kentucky": "KY",
		"Louisiana": "LA", "Maine": "ME", "Maryland": "MD",
		"Massachusetts": "MA", "Michigan": "MI", "Minnesota": "MN",
		"Mississippi": "MS", "Missouri": "MO", "Montana": "MT",
		"Nebraska": "NE", "Nevada": "NV", "New Hampshire": "NH",
		"New Jersey": "NJ", "New Mexico": "NM", "New York": "NY",
		"North Carolina": "NC", "North Dakota": "ND", "Ohio": "OH",
		"Oklahoma": "OK", "Oregon": "OR", "Pennsylvania": "PA",
		"Rhode Island": "RI", "South Carolina": "SC", "South Dakota": "SD",
		"Tennessee": "TN", "Texas": "TX", "Utah": "UT", "Vermont": "VT",
		"Virginia": "VA", "Washington": "WA", "West Virginia": "WV",
		"Wisconsin": "WI", "Wyoming": "WY",
	}
}

func defaultMaritalStatusOptions() []domain.MaritalStatusOption {
	return []domain.MaritalStatusOption{
		{Code: domain.MaritalSingle, Label: "Single"},
		{Code: domain.MaritalMarriedJointly, Label: "Married filing jointly"},
		{Code: domain.MaritalMarriedSeparate, Label: "Married filing separately"},
		{Code: domain.MaritalHeadOfHousehold, Label: "Head of household"},
	}
}

// Defaults returns a fully populated built-in ReferenceData snapshot.
func Defaults() *domain.ReferenceData {
	return &domain.ReferenceData{
		CityCostOfLiving:     defaultCityCOL(),
		StateCOLBase:         defaultStateCOLBase(),
		StateTaxRate:         defaultStateTaxRate(),
		StateNameToAbbr:      defaultStateNameToAbbr(),
		MaritalStatusOptions: defaultMaritalStatusOptions(),
	}
}

// MergeWithDefaults backfills any table the fetched payload left empty so
// downstream consumers can assume every map is populated.
func MergeWithDefaults(fetched *domain.ReferenceData) *domain.ReferenceData {
	if fetched == nil {
		return Defaults()
	}
	merged := *fetched
	if len(merged.CityCostOfLiving) == 0 {
		merged.CityCostOfLiving = defaultCityCOL()
	}
	if len(merged.StateCOLBase) == 0 {
		merged.StateCOLBase = defaultStateCOLBase()
	}
	if len(merged.StateTaxRate) == 0 {
		merged.StateTaxRate = defaultStateTaxRate()
	}
	if len(merged.StateNameToAbbr) == 0 {
		merged.StateNameToAbbr = defaultStateNameToAbbr()
	}
	if len(merged.MaritalStatusOptions) == 0 {
		merged.MaritalStatusOptions = defaultMaritalStatusOptions()
	}
	return &merged
}
