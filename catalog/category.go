package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed keywords.toml
var keywordsTOML []byte

type keywordEntry struct {
	Labels []string `toml:"labels"`
}

var categoryLabels = mustLoadKeywords(keywordsTOML)

func loadKeywords(data []byte) (map[string]Category, error) {
	var table map[string]keywordEntry
	if err := toml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse category keywords: %w", err)
	}

	labels := map[string]Category{}
	for key, entry := range table {
		category := Category(key)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q in keyword table", key)
		}
		for _, label := range entry.Labels {
			labels[normalizeLabel(label)] = category
		}
	}

	return labels, nil
}

func mustLoadKeywords(data []byte) map[string]Category {
	labels, err := loadKeywords(data)
	if err != nil {
		panic(err)
	}
	return labels
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseCategory maps user input to a category. Stable identifiers are
// matched first, then translated labels as whole words. Anything else
// yields false and means "no category filter".
func ParseCategory(text string) (Category, bool) {
	needle := normalizeLabel(text)
	if needle == "" {
		return "", false
	}

	if category := Category(needle); category.Valid() {
		return category, true
	}

	category, ok := categoryLabels[needle]
	return category, ok
}
