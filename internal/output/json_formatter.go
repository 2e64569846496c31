package output

import (
	"github.com/goccy/go-json"

	"github.com/offerlens/offercompare/internal/domain"
)

// JSONFormatter serializes the ranked comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(comparison *domain.Comparison) ([]byte, error) {
	return json.MarshalIndent(comparison, "", "  ")
}
