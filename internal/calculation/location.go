package calculation

import (
	"regexp"
	"strings"
)

// trailingStateAbbr matches a trailing ", XX" two-letter state suffix.
var trailingStateAbbr = regexp.MustCompile(`,\s*([A-Za-z]{2})\s*$`)

// NormalizeLocation trims whitespace and strips a trailing
// ", United States" suffix, the form the rent and reference services
// return matched areas in.
func NormalizeLocation(location string) string {
	s := strings.TrimSpace(location)
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, ", united states") {
		s = strings.TrimSpace(s[:len(s)-len(", united states")])
	}
	return s
}

// ResolveStateAbbr extracts a two-letter state abbreviation from a
// free-text location. It first tries a trailing ", XX" pattern, then
// searches for any full state name contained in the string, preferring
// the longest match so "West Virginia" is not shadowed by "Virginia".
// Returns "" when nothing matches.
func ResolveStateAbbr(location string, nameToAbbr map[string]string) string {
	s := NormalizeLocation(location)
	if s == "" {
		return ""
	}

	if m := trailingStateAbbr.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1])
	}

	lower := strings.ToLower(s)
	bestName := ""
	bestAbbr := ""
	for name, abbr := range nameToAbbr {
		if strings.Contains(lower, strings.ToLower(name)) && len(name) > len(bestName) {
			bestName = name
			bestAbbr = abbr
		}
	}
	return bestAbbr
}
