package catalog

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortNone      SortKey = ""
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortTopRated  SortKey = "top_rated"
	SortNearest   SortKey = "nearest"
)

const DefaultSort = SortTopRated

var SortKeys = []SortKey{SortPriceAsc, SortPriceDesc, SortTopRated, SortNearest}

// ParseSortKey accepts the stable key names. Empty input selects DefaultSort.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSort, nil
	}

	key := SortKey(s)
	if !slices.Contains(SortKeys, key) {
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}

	return key, nil
}

// Criteria holds the optional predicates. Zero values skip their predicate.
type Criteria struct {
	Category      Category
	Destination   string
	MaxPrice      *float64
	MaxDistanceKm *float64
	MinRating     *float64
	Sort          SortKey
}

func (c Criteria) matches(s Service, destination string) bool {
	if c.Category != "" && s.Category != c.Category {
		return false
	}

	if destination != "" && !strings.Contains(strings.ToLower(s.Location), destination) {
		return false
	}

	if c.MaxPrice != nil && s.PriceEUR > *c.MaxPrice {
		return false
	}

	if c.MaxDistanceKm != nil && s.DistanceValue() > *c.MaxDistanceKm*1000 {
		return false
	}

	if c.MinRating != nil && s.RatingValue() < *c.MinRating {
		return false
	}

	return true
}

// Apply filters services by criteria and sorts the result. The input slice is
// left untouched and ties keep their input order.
func Apply(services []Service, criteria Criteria) []Service {
	destination := strings.ToLower(strings.TrimSpace(criteria.Destination))

	result := make([]Service, 0, len(services))
	for _, s := range services {
		if criteria.matches(s, destination) {
			result = append(result, s)
		}
	}

	switch criteria.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b Service) int { return cmp.Compare(a.PriceEUR, b.PriceEUR) })
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b Service) int { return cmp.Compare(b.PriceEUR, a.PriceEUR) })
	case SortTopRated:
		slices.SortStableFunc(result, func(a, b Service) int { return cmp.Compare(b.RatingValue(), a.RatingValue()) })
	case SortNearest:
		slices.SortStableFunc(result, func(a, b Service) int { return cmp.Compare(a.DistanceValue(), b.DistanceValue()) })
	}

	return result
}

// WithCoordinates keeps the services that can be placed on a map.
func WithCoordinates(services []Service) []Service {
	result := make([]Service, 0, len(services))
	for _, s := range services {
		if s.HasCoordinates() {
			result = append(result, s)
		}
	}
	return result
}

// CriteriaInput is the raw text of a filter form or query string.
type CriteriaInput struct {
	Category      string
	Destination   string
	MaxPrice      string
	MaxDistanceKm string
	MinRating     string
	Sort          string
}

// ParseCriteria turns form text into Criteria. An unrecognized category
// disables the category filter instead of failing.
func ParseCriteria(in CriteriaInput) (Criteria, error) {
	sort, err := ParseSortKey(in.Sort)
	if err != nil {
		return Criteria{}, err
	}

	criteria := Criteria{Destination: strings.TrimSpace(in.Destination), Sort: sort}

	if category, ok := ParseCategory(in.Category); ok {
		criteria.Category = category
	}

	numbers := []struct {
		name string
		text string
		dst  **float64
	}{
		{"maxPrice", in.MaxPrice, &criteria.MaxPrice},
		{"maxDistanceKm", in.MaxDistanceKm, &criteria.MaxDistanceKm},
		{"minRating", in.MinRating, &criteria.MinRating},
	}

	for _, n := range numbers {
		text := strings.TrimSpace(n.text)
		if text == "" {
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Criteria{}, fmt.Errorf("%w: %s=%q", ErrInvalidCriteria, n.name, n.text)
		}

		*n.dst = &v
	}

	return criteria, nil
}
