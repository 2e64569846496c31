package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// DefaultCOLIndex is the national-baseline cost-of-living index returned
// when a location matches neither a city nor a state.
const DefaultCOLIndex = 100

// CostOfLivingResolver maps a free-text location to a purchasing-power
// index where 100 is the national average. Resolution order: normalized
// city match, raw city match, state-level base, then the default.
type CostOfLivingResolver struct {
	CityIndex       map[string]decimal.Decimal
	StateBase       map[string]decimal.Decimal
	StateNameToAbbr map[string]string
}

// NewCostOfLivingResolver builds a resolver over the given reference
// tables; a nil ReferenceData is tolerated and resolves everything to
// the default index.
func NewCostOfLivingResolver(ref *domain.ReferenceData) *CostOfLivingResolver {
	r := &CostOfLivingResolver{}
	if ref != nil {
		r.CityIndex = ref.CityCostOfLiving
		r.StateBase = ref.StateCOLBase
		r.StateNameToAbbr = ref.StateNameToAbbr
	}
	return r
}

// Resolve returns a positive index for the location. Consumers dividing
// by the result should still guard with GuardIndex.
func (r *CostOfLivingResolver) Resolve(location string) decimal.Decimal {
	normalized := NormalizeLocation(location)
	if v, ok := r.CityIndex[normalized]; ok {
		return v
	}
	if v, ok := r.CityIndex[location]; ok {
		return v
	}
	if abbr := ResolveStateAbbr(location, r.StateNameToAbbr); abbr != "" {
		if v, ok := r.StateBase[abbr]; ok {
			return v
		}
	}
	return decimal.NewFromInt(DefaultCOLIndex)
}

// GuardIndex floors a COL index at 1 so it is always safe to divide by.
func GuardIndex(index decimal.Decimal) decimal.Decimal {
	return decimal.Max(index, decimal.NewFromInt(1))
}
