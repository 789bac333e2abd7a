package catalog

import (
	"strconv"
	"strings"
)

const DefaultSuggestionCount = 6

func PriceLabel(price float64) string {
	return "EUR " + strconv.FormatFloat(price, 'f', -1, 64)
}

// DistanceLabel renders meters as "-", "<m>m" or "<km>km" with one decimal.
func DistanceLabel(meters *float64) string {
	if meters == nil {
		return "-"
	}

	if *meters >= 1000 {
		return strconv.FormatFloat(*meters/1000, 'f', 1, 64) + "km"
	}

	return strconv.FormatFloat(*meters, 'f', -1, 64) + "m"
}

// LocationSuggestions lists distinct locations containing needle, in the
// order they first appear.
func LocationSuggestions(services []Service, needle string, limit int) []string {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" || limit <= 0 {
		return []string{}
	}

	seen := map[string]struct{}{}
	suggestions := []string{}

	for _, s := range services {
		if !strings.Contains(strings.ToLower(s.Location), needle) {
			continue
		}
		if _, ok := seen[s.Location]; ok {
			continue
		}
		seen[s.Location] = struct{}{}
		suggestions = append(suggestions, s.Location)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}
