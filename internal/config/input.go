package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/offerlens/offercompare/internal/domain"
)

// OffersDocument is the YAML input carrying the real offers for one
// comparison session, each joined with its application record. The CRUD
// backend that owns these records is out of scope; this file stands in
// for it.
type OffersDocument struct {
	MaritalStatus domain.MaritalStatus `yaml:"marital_status,omitempty"`
	Offers        []*domain.Offer      `yaml:"offers"`
}

// InputParser handles parsing of offer input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an offers document from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*OffersDocument, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc OffersDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("offers validation failed: %w", err)
	}

	return &doc, nil
}

// ValidateDocument validates the loaded offers.
func (ip *InputParser) ValidateDocument(doc *OffersDocument) error {
	if len(doc.Offers) == 0 {
		return fmt.Errorf("no offers provided")
	}

	currents := 0
	seen := make(map[string]bool, len(doc.Offers))
	for i, offer := range doc.Offers {
		if err := ip.validateOffer(i, offer); err != nil {
			return err
		}
		if offer.IsCurrent {
			currents++
		}
		if offer.ID != "" {
			if seen[offer.ID] {
				return fmt.Errorf("offer %d: duplicate id %s", i, offer.ID)
			}
			seen[offer.ID] = true
		}
	}
	if currents > 1 {
		return fmt.Errorf("at most one offer may be flagged current, got %d", currents)
	}
	return nil
}

// validateOffer validates a single offer record.
func (ip *InputParser) validateOffer(i int, offer *domain.Offer) error {
	if offer.ID == "" {
		return fmt.Errorf("offer %d: id is required", i)
	}
	if offer.Kind == "" {
		offer.Kind = domain.OfferReal
	}
	if err := offer.Validate(); err != nil {
		return fmt.Errorf("offer %d: %w", i, err)
	}
	if offer.BaseSalary.IsNegative() {
		return fmt.Errorf("offer %d: base salary cannot be negative", i)
	}
	if offer.PTODays < 0 || offer.HolidayDays < 0 {
		return fmt.Errorf("offer %d: time off days cannot be negative", i)
	}
	if rto := offer.EffectiveRTODays(); rto != nil && (*rto < 0 || *rto > 7) {
		return fmt.Errorf("offer %d: rto days per week must be between 0 and 7", i)
	}
	return nil
}
