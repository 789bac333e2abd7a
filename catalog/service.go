package catalog

import (
	"slices"
	"time"
)

type Category string

const (
	CategoryRest    Category = "rest"
	CategoryShower  Category = "shower"
	CategoryStorage Category = "storage"
)

var Categories = []Category{CategoryRest, CategoryShower, CategoryStorage}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

type Service struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       Category  `json:"category"`
	PriceEUR       float64   `json:"priceEur"`
	ImageURL       *string   `json:"imageUrl"`
	Location       string    `json:"location"`
	City           *string   `json:"city"`
	Region         *string   `json:"region"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Rating         *float64  `json:"rating"`
	DistanceMeters *float64  `json:"distanceMeters"`
	Section        *string   `json:"section"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (s Service) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// RatingValue treats a missing rating as 0.
func (s Service) RatingValue() float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}

// DistanceValue treats a missing distance as 0.
func (s Service) DistanceValue() float64 {
	if s.DistanceMeters == nil {
		return 0
	}
	return *s.DistanceMeters
}

// FavoriteSet is the set of service ids a guest has favorited.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(ids ...string) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (f FavoriteSet) Has(id string) bool {
	_, ok := f[id]
	return ok
}

func (f FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
