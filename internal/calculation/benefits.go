package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/offerlens/offercompare/internal/domain"
)

// WorkdaysPerYear annualizes daily costs and perks.
const WorkdaysPerYear = 260

var (
	twelve   = decimal.NewFromInt(12)
	workdays = decimal.NewFromInt(WorkdaysPerYear)
)

// AnnualizeBenefits collapses itemized benefits into one annual figure:
// monthly amounts times 12, yearly amounts as-is. Order-independent and
// idempotent; negative amounts contribute 0.
func AnnualizeBenefits(items []domain.BenefitItem) decimal.Decimal {
	var total decimal.Decimal
	for _, item := range items {
		amount := item.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		if item.Frequency == domain.FrequencyMonthly {
			amount = amount.Mul(twelve)
		}
		total = total.Add(amount)
	}
	return total
}

// AnnualizeCost converts a recurring cost or perk to an annual figure:
// daily amounts over the standard workday count, monthly times 12,
// yearly as-is. A nil cost is 0.
func AnnualizeCost(c *domain.RecurringCost) decimal.Decimal {
	if c == nil || c.Amount.IsNegative() {
		return decimal.Zero
	}
	switch c.Frequency {
	case domain.CostDaily:
		return c.Amount.Mul(workdays)
	case domain.CostMonthly:
		return c.Amount.Mul(twelve)
	default:
		return c.Amount
	}
}
