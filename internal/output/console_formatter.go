package output

import (
	"bytes"
	"fmt"

	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/pkg/money"
)

// ConsoleFormatter renders the ranked comparison as a plain-text table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(comparison *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "OFFER COMPARISON")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Reference location: %s (COL %s, baseline rent %s/mo)\n",
		comparison.ReferenceLocation,
		comparison.BaselineCOL.StringFixed(0),
		money.FromDecimal(comparison.BaselineRent).Format(),
	)
	fmt.Fprintf(&buf, "Filing status: %s\n", comparison.MaritalStatus)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-4s %-24s %-20s %6s %12s %12s %8s %12s %12s\n",
		"#", "Company / Role", "Location", "COL", "Total Comp", "Adjusted", "TaxRate", "Rent/mo", "Δ Adjusted")
	for i, row := range comparison.Rows {
		name := row.Company
		if row.Role != "" {
			name = fmt.Sprintf("%s / %s", row.Company, row.Role)
		}
		if row.IsCurrent {
			name += " *"
		}
		if row.Kind == domain.OfferSimulated {
			name += " (sim)"
		}
		fmt.Fprintf(&buf, "%-4d %-24.24s %-20.20s %6s %12s %12s %7s%% %12s %12s\n",
			i+1,
			name,
			row.Location,
			row.COLIndex.StringFixed(0),
			money.FromDecimal(row.TotalComp).Format(),
			money.FromDecimal(row.AdjustedValue).Format(),
			row.UsedTaxRates.Base.StringFixed(1),
			money.FromDecimal(row.MonthlyRent).Format(),
			money.FormatSignedDelta(row.Deltas.AdjustedValue),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "* current offer; deltas are relative to it")
	return buf.Bytes(), nil
}
