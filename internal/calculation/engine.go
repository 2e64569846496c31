package calculation

import (
	"github.com/offerlens/offercompare/internal/domain"
)

// ComparisonEngine orchestrates one comparison session: the tax
// estimator and COL resolver over a reference-data snapshot, plus the
// previously reported row map backing the stable-output gate. The model
// is single-threaded: every input change triggers a full recompute.
type ComparisonEngine struct {
	Tax          *EffectiveTaxEstimator
	COL          *CostOfLivingResolver
	FallbackCity string
	Logger       Logger

	// lastRows is the most recently reported row map; Compare diffs
	// fresh results against it before handing anything out.
	lastRows map[string]*domain.ScenarioRow
}

// NewComparisonEngine builds an engine over a (default-merged) reference
// snapshot.
func NewComparisonEngine(ref *domain.ReferenceData) *ComparisonEngine {
	return &ComparisonEngine{
		Tax:          NewEffectiveTaxEstimator(ref),
		COL:          NewCostOfLivingResolver(ref),
		FallbackCity: FallbackCity,
		Logger:       NopLogger{},
	}
}

// SetLogger sets the engine logger; nil restores the no-op logger.
func (e *ComparisonEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Compare runs a full recompute and gates the resulting row map through
// the stable-output diff: if nothing changed beyond sub-unit drift, the
// previously reported map reference is returned again.
func (e *ComparisonEngine) Compare(in ComparisonInput) (*domain.Comparison, map[string]*domain.ScenarioRow) {
	comparison := e.BuildComparison(in)
	rows := StableRows(e.lastRows, comparison.RowMap())
	e.lastRows = rows
	return comparison, rows
}
