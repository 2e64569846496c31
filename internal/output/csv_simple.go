package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/offerlens/offercompare/internal/domain"
)

// CSVFormatter writes one row per ranked offer.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(comparison *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Rank", "OfferID", "Kind", "Company", "Role", "Current",
		"Location", "COLIndex", "MonthlyRent",
		"BaseTaxRate", "BonusTaxRate", "EquityTaxRate",
		"TotalComp", "AfterTaxBase", "AfterTaxBonus", "AfterTaxEquity",
		"TimeOffDays", "LifestyleAdjustment", "AdjustedValue",
		"DeltaTotalComp", "DeltaAdjusted",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i, row := range comparison.Rows {
		record := []string{
			strconv.Itoa(i + 1),
			row.OfferID,
			string(row.Kind),
			row.Company,
			row.Role,
			strconv.FormatBool(row.IsCurrent),
			row.Location,
			row.COLIndex.StringFixed(0),
			row.MonthlyRent.StringFixed(2),
			row.UsedTaxRates.Base.StringFixed(2),
			row.UsedTaxRates.Bonus.StringFixed(2),
			row.UsedTaxRates.Equity.StringFixed(2),
			row.TotalComp.StringFixed(2),
			row.AfterTaxBase.StringFixed(2),
			row.AfterTaxBonus.StringFixed(2),
			row.AfterTaxEquity.StringFixed(2),
			strconv.Itoa(row.TimeOffDays),
			row.LifestyleAdjustment.StringFixed(2),
			row.AdjustedValue.StringFixed(2),
			row.Deltas.TotalComp.StringFixed(2),
			row.Deltas.AdjustedValue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
