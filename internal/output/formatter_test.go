package output

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerlens/offercompare/internal/domain"
)

func sampleComparison() *domain.Comparison {
	return &domain.Comparison{
		ReferenceLocation: "Austin, TX",
		BaselineCOL:       decimal.NewFromInt(97),
		BaselineRent:      decimal.NewFromInt(1650),
		MaritalStatus:     domain.MaritalSingle,
		Rows: []*domain.ScenarioRow{
			{
				OfferID:       "cur",
				Kind:          domain.OfferReal,
				Company:       "Current Co",
				Role:          "Engineer",
				IsCurrent:     true,
				Location:      "Austin, TX",
				COLIndex:      decimal.NewFromInt(97),
				MonthlyRent:   decimal.NewFromInt(1650),
				TotalComp:     decimal.NewFromInt(150000),
				AdjustedValue: decimal.NewFromInt(98000),
				TimeOffDays:   30,
				UsedTaxRates: domain.UsedTaxRates{
					Base:   decimal.NewFromFloat(24.5),
					Bonus:  decimal.NewFromFloat(28.5),
					Equity: decimal.NewFromFloat(30.5),
				},
			},
			{
				OfferID:       "sim",
				Kind:          domain.OfferSimulated,
				Company:       "Dream Co",
				Role:          "Staff Engineer",
				Location:      "Denver, CO",
				COLIndex:      decimal.NewFromInt(103),
				MonthlyRent:   decimal.NewFromInt(1752),
				TotalComp:     decimal.NewFromInt(210000),
				AdjustedValue: decimal.NewFromInt(92000),
				TimeOffDays:   25,
				UsedTaxRates: domain.UsedTaxRates{
					Base:   decimal.NewFromFloat(29.1),
					Bonus:  decimal.NewFromFloat(33.1),
					Equity: decimal.NewFromFloat(35.1),
				},
				Deltas: domain.RowDeltas{
					TotalComp:     decimal.NewFromInt(60000),
					AdjustedValue: decimal.NewFromInt(-6000),
				},
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"", "console"},
		{"pretty", "console"},
		{"table", "console"},
		{"JSON", "json"},
		{" csv ", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.in)
		require.NotNil(t, f, "formatter for %q", tt.in)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleComparison())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "OFFER COMPARISON")
	assert.Contains(t, out, "Austin, TX")
	assert.Contains(t, out, "Current Co / Engineer *")
	assert.Contains(t, out, "(sim)")
	assert.Contains(t, out, "$150,000")
	assert.Contains(t, out, "-$6,000")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	data, err := JSONFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	var decoded domain.Comparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Austin, TX", decoded.ReferenceLocation)
	require.Len(t, decoded.Rows, 2)
	assert.Equal(t, "cur", decoded.Rows[0].OfferID)
	assert.True(t, decoded.Rows[1].Deltas.AdjustedValue.Equal(decimal.NewFromInt(-6000)))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleComparison())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one record per row")

	header := records[0]
	assert.Equal(t, "Rank", header[0])
	assert.Equal(t, "AdjustedValue", header[18])

	first := records[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "cur", first[1])
	assert.Equal(t, "true", first[5])
	assert.Equal(t, "150000.00", first[12])

	second := records[2]
	assert.Equal(t, "SIMULATED", second[2])
	assert.Equal(t, "-6000.00", second[20])
}
