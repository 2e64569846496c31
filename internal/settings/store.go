// Package settings persists the client-local comparison state: the
// selected filing status and the user's simulated offers. The blob is
// versioned, read once at startup, and overwritten wholesale on save
// (last write wins, no merge).
package settings

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/offerlens/offercompare/internal/domain"
	"github.com/offerlens/offercompare/pkg/dateutil"
)

// CurrentVersion is the settings schema version. Version 1 predates
// itemized benefits and is migrated on load.
const CurrentVersion = 2

// Blob is the persisted settings document.
type Blob struct {
	Version         int                  `json:"version"`
	MaritalStatus   domain.MaritalStatus `json:"marital_status"`
	SimulatedOffers []*domain.Offer      `json:"simulated_offers"`
	SavedAt         string               `json:"saved_at,omitempty"`
}

// emptyBlob is the state used when nothing is saved yet or the saved
// blob is unreadable.
func emptyBlob() *Blob {
	return &Blob{
		Version:       CurrentVersion,
		MaritalStatus: domain.MaritalSingle,
	}
}

// Store is a file-backed versioned settings store.
type Store struct {
	path string
	log  *zap.SugaredLogger
}

// NewStore creates a store at the given path.
func NewStore(path string, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{path: path, log: log}
}

// legacyOfferProbe captures the v1 flat benefits_value field the typed
// Offer no longer carries.
type legacyOfferProbe struct {
	SimulatedOffers []struct {
		BenefitsValue *decimal.Decimal `json:"benefits_value"`
	} `json:"simulated_offers"`
}

// Load reads the settings blob, migrating legacy versions. A missing
// file yields empty defaults; a corrupt file is logged and likewise
// treated as "no saved settings" so startup never fails.
func (s *Store) Load() *Blob {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warnw("settings read failed, starting fresh", "path", s.path, "error", err)
		}
		return emptyBlob()
	}

	var blob Blob
	if err := json.Unmarshal(data, &blob); err != nil {
		s.log.Warnw("settings blob is corrupt, starting fresh", "path", s.path, "error", err)
		return emptyBlob()
	}
	if blob.MaritalStatus == "" {
		blob.MaritalStatus = domain.MaritalSingle
	}

	if blob.Version < CurrentVersion {
		s.migrate(&blob, data)
	}
	return &blob
}

// migrate upgrades a v1 blob in place: offers saved with a flat
// benefits_value and no itemized benefits get one synthesized "Benefits"
// item carrying that yearly amount.
func (s *Store) migrate(blob *Blob, raw []byte) {
	var probe legacyOfferProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		s.log.Warnw("legacy settings probe failed, keeping offers as-is", "error", err)
		blob.Version = CurrentVersion
		return
	}
	for i, o := range blob.SimulatedOffers {
		if len(o.BenefitItems) > 0 || i >= len(probe.SimulatedOffers) {
			continue
		}
		legacy := probe.SimulatedOffers[i].BenefitsValue
		if legacy == nil || legacy.IsZero() {
			continue
		}
		o.BenefitItems = []domain.BenefitItem{{
			ID:        fmt.Sprintf("%s-benefits", o.ID),
			Label:     "Benefits",
			Amount:    *legacy,
			Frequency: domain.FrequencyYearly,
		}}
	}
	s.log.Infow("migrated settings blob", "from_version", blob.Version, "to_version", CurrentVersion)
	blob.Version = CurrentVersion
}

// Save writes the whole blob, stamping version and save time.
func (s *Store) Save(blob *Blob) error {
	blob.Version = CurrentVersion
	blob.SavedAt = dateutil.Stamp(time.Now())

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings to %s: %w", s.path, err)
	}
	return nil
}

// AddSimulated validates and appends a simulated offer.
func (b *Blob) AddSimulated(o *domain.Offer) error {
	o.Kind = domain.OfferSimulated
	if err := o.Validate(); err != nil {
		return err
	}
	b.SimulatedOffers = append(b.SimulatedOffers, o)
	return nil
}

// UpdateSimulated replaces the simulated offer with the same ID.
func (b *Blob) UpdateSimulated(o *domain.Offer) error {
	o.Kind = domain.OfferSimulated
	if err := o.Validate(); err != nil {
		return err
	}
	for i, existing := range b.SimulatedOffers {
		if existing.ID == o.ID {
			b.SimulatedOffers[i] = o
			return nil
		}
	}
	return fmt.Errorf("no simulated offer with id %s", o.ID)
}

// RemoveSimulated deletes a simulated offer by ID; unknown IDs are a
// no-op.
func (b *Blob) RemoveSimulated(id string) {
	kept := b.SimulatedOffers[:0]
	for _, o := range b.SimulatedOffers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	b.SimulatedOffers = kept
}
