package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WorkMode describes where an offer expects the employee to work.
type WorkMode string

const (
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeHybrid WorkMode = "HYBRID"
	WorkModeOnsite WorkMode = "ONSITE"
)

// ParseWorkMode normalizes a free-form work mode string. Unrecognized
// values default to hybrid, the most conservative lifestyle assumption.
func ParseWorkMode(s string) WorkMode {
	switch WorkMode(strings.ToUpper(strings.TrimSpace(s))) {
	case WorkModeRemote:
		return WorkModeRemote
	case WorkModeOnsite:
		return WorkModeOnsite
	default:
		return WorkModeHybrid
	}
}

// BenefitFrequency is the cadence a benefit amount is quoted at.
type BenefitFrequency string

const (
	FrequencyMonthly BenefitFrequency = "MONTHLY"
	FrequencyYearly  BenefitFrequency = "YEARLY"
)

// CostFrequency is the cadence a recurring cost or perk is quoted at.
// Daily amounts are annualized over the standard 260 workdays.
type CostFrequency string

const (
	CostDaily   CostFrequency = "DAILY"
	CostMonthly CostFrequency = "MONTHLY"
	CostYearly  CostFrequency = "YEARLY"
)

// BenefitItem is one itemized benefit on an offer. Identity is immutable
// once created; a non-positive amount is carried as-is and treated as 0
// by the annualizer.
type BenefitItem struct {
	ID        string           `yaml:"id" json:"id"`
	Label     string           `yaml:"label" json:"label"`
	Amount    decimal.Decimal  `yaml:"amount" json:"amount"`
	Frequency BenefitFrequency `yaml:"frequency" json:"frequency"`
}

// RecurringCost is a commute cost or perk value quoted at some cadence.
type RecurringCost struct {
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Frequency CostFrequency   `yaml:"frequency" json:"frequency"`
}

// Application is the backend record a real offer is linked to. It carries
// the location and workplace policy the comparison resolves rows against.
// CRUD of these records happens in the external backend; here they are
// read-only inputs.
type Application struct {
	ID       string `yaml:"id" json:"id"`
	Company  string `yaml:"company" json:"company"`
	Role     string `yaml:"role" json:"role"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`

	WorkMode       WorkMode `yaml:"work_mode,omitempty" json:"work_mode,omitempty"`
	RTODaysPerWeek *int     `yaml:"rto_days_per_week,omitempty" json:"rto_days_per_week,omitempty"`

	CommuteCost   *RecurringCost `yaml:"commute_cost,omitempty" json:"commute_cost,omitempty"`
	FreeFoodValue *RecurringCost `yaml:"free_food_value,omitempty" json:"free_food_value,omitempty"`
}

// OfferKind tags the two offer variants consumed by the uniform
// row-construction path.
type OfferKind string

const (
	// OfferReal is a persisted offer joined with its Application record.
	OfferReal OfferKind = "REAL"
	// OfferSimulated is an ephemeral, user-authored scenario that never
	// reaches the backend.
	OfferSimulated OfferKind = "SIMULATED"
)

// EquityGrant describes the equity component of an offer. AnnualValue is
// used directly when set; otherwise it is derived as TotalGrant scaled by
// VestingPercent. RealizationPercent is a separate knob expressing
// liquidity uncertainty: when set, the taxed equity is scaled by it.
type EquityGrant struct {
	AnnualValue        decimal.Decimal  `yaml:"annual_value,omitempty" json:"annual_value,omitempty"`
	TotalGrant         decimal.Decimal  `yaml:"total_grant,omitempty" json:"total_grant,omitempty"`
	VestingPercent     decimal.Decimal  `yaml:"vesting_percent,omitempty" json:"vesting_percent,omitempty"`
	RealizationPercent *decimal.Decimal `yaml:"realization_percent,omitempty" json:"realization_percent,omitempty"`
}

// ResolvedAnnual returns the annual equity value, deriving it from the
// total grant when no direct annual value was entered.
func (e EquityGrant) ResolvedAnnual() decimal.Decimal {
	if e.AnnualValue.IsPositive() {
		return e.AnnualValue
	}
	if e.TotalGrant.IsPositive() && e.VestingPercent.IsPositive() {
		return e.TotalGrant.Mul(e.VestingPercent).Div(decimal.NewFromInt(100))
	}
	return decimal.Zero
}

// Offer is the single tagged shape covering both real and simulated
// offers. Real offers always carry their joined Application; simulated
// offers may link one to inherit its location and workplace policy, or
// supply CustomCompany/CustomRole instead.
type Offer struct {
	Kind OfferKind `yaml:"kind" json:"kind"`
	ID   string    `yaml:"id" json:"id"`

	// Simulated-only identity when no application is linked.
	CustomCompany string `yaml:"custom_company,omitempty" json:"custom_company,omitempty"`
	CustomRole    string `yaml:"custom_role,omitempty" json:"custom_role,omitempty"`

	Application *Application `yaml:"application,omitempty" json:"application,omitempty"`

	// Workplace policy on the offer itself. Unset fields inherit from the
	// linked application; standalone simulated offers set them directly.
	WorkMode       WorkMode `yaml:"work_mode,omitempty" json:"work_mode,omitempty"`
	RTODaysPerWeek *int     `yaml:"rto_days_per_week,omitempty" json:"rto_days_per_week,omitempty"`

	BaseSalary decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	Bonus      decimal.Decimal `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	SignOn     decimal.Decimal `yaml:"sign_on,omitempty" json:"sign_on,omitempty"`
	Equity     EquityGrant     `yaml:"equity,omitempty" json:"equity,omitempty"`

	BenefitItems []BenefitItem `yaml:"benefit_items,omitempty" json:"benefit_items,omitempty"`

	PTODays     int `yaml:"pto_days,omitempty" json:"pto_days,omitempty"`
	HolidayDays int `yaml:"holiday_days,omitempty" json:"holiday_days,omitempty"`

	// Per-offer overrides. Nil means "estimate it".
	TaxRateOverride     *decimal.Decimal `yaml:"tax_rate_override,omitempty" json:"tax_rate_override,omitempty"`
	MonthlyRentOverride *decimal.Decimal `yaml:"monthly_rent_override,omitempty" json:"monthly_rent_override,omitempty"`

	// Lifestyle knobs for the value calculation. WellnessBonus and
	// WLBBonus are direct annual dollar adjustments.
	WellnessBonus decimal.Decimal `yaml:"wellness_bonus,omitempty" json:"wellness_bonus,omitempty"`
	WLBBonus      decimal.Decimal `yaml:"wlb_bonus,omitempty" json:"wlb_bonus,omitempty"`

	IsCurrent bool `yaml:"is_current,omitempty" json:"is_current,omitempty"`
}

// Company returns the display company for the offer, preferring the
// linked application record.
func (o *Offer) Company() string {
	if o.Application != nil && o.Application.Company != "" {
		return o.Application.Company
	}
	return o.CustomCompany
}

// Role returns the display role for the offer, preferring the linked
// application record.
func (o *Offer) Role() string {
	if o.Application != nil && o.Application.Role != "" {
		return o.Application.Role
	}
	return o.CustomRole
}

// Location returns the offer's own location, which may be empty; callers
// fall back to the shared reference location.
func (o *Offer) Location() string {
	if o.Application != nil {
		return o.Application.Location
	}
	return ""
}

// EffectiveWorkMode resolves the work mode: the offer's own setting
// wins, then the linked application's, then the hybrid default.
func (o *Offer) EffectiveWorkMode() WorkMode {
	if o.WorkMode != "" {
		return ParseWorkMode(string(o.WorkMode))
	}
	if o.Application != nil && o.Application.WorkMode != "" {
		return ParseWorkMode(string(o.Application.WorkMode))
	}
	return WorkModeHybrid
}

// EffectiveRTODays returns the offer's return-to-office days, preferring
// the offer's own setting over the linked application's. A nil pointer
// means the policy was never entered and the work-mode default penalty
// applies; an explicit 0 is a valid value meaning zero in-office days.
func (o *Offer) EffectiveRTODays() *int {
	if o.RTODaysPerWeek != nil {
		return o.RTODaysPerWeek
	}
	if o.Application != nil {
		return o.Application.RTODaysPerWeek
	}
	return nil
}

// Validate rejects simulated offers that identify nothing: a simulated
// offer must either link an application or name both a company and role.
func (o *Offer) Validate() error {
	if o.Kind == OfferReal && o.Application == nil {
		return fmt.Errorf("real offer %s has no linked application", o.ID)
	}
	if o.Kind == OfferSimulated && o.Application == nil {
		if o.CustomCompany == "" || o.CustomRole == "" {
			return fmt.Errorf("simulated offer needs a linked application or both a company and a role")
		}
	}
	return nil
}
