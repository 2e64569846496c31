package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerlens/offercompare/internal/domain"
)

const validOffersYAML = `
marital_status: MARRIED_JOINTLY
offers:
  - id: offer-1
    is_current: true
    base_salary: 140000
    bonus: 10000
    pto_days: 20
    holiday_days: 10
    application:
      id: app-1
      company: Current Co
      role: Engineer
      location: "Austin, TX"
      work_mode: HYBRID
      rto_days_per_week: 3
  - id: offer-2
    base_salary: 180000
    equity:
      total_grant: 400000
      vesting_percent: 25
    benefit_items:
      - id: b1
        label: Stipend
        amount: 100
        frequency: MONTHLY
    application:
      id: app-2
      company: Bay Co
      role: Senior Engineer
      location: "San Francisco, CA"
      work_mode: ONSITE
`

func writeOffers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOffersFromFile(t *testing.T) {
	doc, err := NewInputParser().LoadFromFile(writeOffers(t, validOffersYAML))
	require.NoError(t, err)

	assert.Equal(t, domain.MaritalMarriedJointly, doc.MaritalStatus)
	require.Len(t, doc.Offers, 2)

	first := doc.Offers[0]
	assert.Equal(t, domain.OfferReal, first.Kind, "kind defaults to real")
	assert.True(t, first.IsCurrent)
	require.NotNil(t, first.Application)
	assert.Equal(t, "Austin, TX", first.Application.Location)
	require.NotNil(t, first.Application.RTODaysPerWeek)
	assert.Equal(t, 3, *first.Application.RTODaysPerWeek)

	second := doc.Offers[1]
	assert.EqualValues(t, 100000, second.Equity.ResolvedAnnual().IntPart())
	require.Len(t, second.BenefitItems, 1)
}

func TestLoadOffersMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateOffers(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc *OffersDocument)
		wantErr string
	}{
		{
			name:    "no offers",
			mutate:  func(doc *OffersDocument) { doc.Offers = nil },
			wantErr: "no offers",
		},
		{
			name: "missing id",
			mutate: func(doc *OffersDocument) {
				doc.Offers[0].ID = ""
			},
			wantErr: "id is required",
		},
		{
			name: "duplicate id",
			mutate: func(doc *OffersDocument) {
				doc.Offers[1].ID = doc.Offers[0].ID
			},
			wantErr: "duplicate",
		},
		{
			name: "two current offers",
			mutate: func(doc *OffersDocument) {
				doc.Offers[1].IsCurrent = true
			},
			wantErr: "current",
		},
		{
			name: "real offer without application",
			mutate: func(doc *OffersDocument) {
				doc.Offers[1].Application = nil
			},
			wantErr: "application",
		},
		{
			name: "negative salary",
			mutate: func(doc *OffersDocument) {
				doc.Offers[1].BaseSalary = doc.Offers[1].BaseSalary.Neg()
			},
			wantErr: "base salary",
		},
		{
			name: "rto out of range",
			mutate: func(doc *OffersDocument) {
				days := 9
				doc.Offers[0].Application.RTODaysPerWeek = &days
			},
			wantErr: "rto days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewInputParser().LoadFromFile(writeOffers(t, validOffersYAML))
			require.NoError(t, err)
			tt.mutate(doc)

			err = NewInputParser().ValidateDocument(doc)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
