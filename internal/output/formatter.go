package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/offerlens/offercompare/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte
// slice. Implementations should be pure (no side effects besides
// deterministic formatting).
type Formatter interface {
	Format(comparison *domain.Comparison) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// NormalizeFormatName maps common aliases to canonical formatter names.
func NormalizeFormatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "console", "pretty", "table":
		return "console"
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return strings.ToLower(strings.TrimSpace(name))
	}
}

// GetFormatterByName fetches a registered formatter, or nil when the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// WriteFormatted runs a formatter and writes its output to a
// timestamped file with the given extension, returning the filename.
func WriteFormatted(f Formatter, comparison *domain.Comparison, ext string) (string, error) {
	data, err := f.Format(comparison)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("offer_comparison_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
