package catalog

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
)

const earthRadiusMeters = 6371000

const (
	DefaultRecentCount = 10
	DefaultNearbyCount = 10
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HaversineMeters is the great-circle distance between a and b.
func HaversineMeters(a, b Coordinates) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Sample returns up to n services in random order.
func Sample(services []Service, n int) []Service {
	shuffled := slices.Clone(services)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:min(n, len(shuffled))]
}

// ResolveRecent maps recently viewed ids onto services, keeping their order
// and dropping unknown ids. When nothing resolves a random sample stands in.
func ResolveRecent(ids []string, services []Service, n int) []Service {
	if len(services) == 0 {
		return []Service{}
	}

	byID := make(map[string]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}

	ordered := []Service{}
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			ordered = append(ordered, s)
		}
	}

	if len(ordered) > 0 {
		return ordered[:min(n, len(ordered))]
	}

	return Sample(services, n)
}

// AroundYou orders services with coordinates by distance from origin. Without
// an origin, or when no service has coordinates, a random sample is returned.
func AroundYou(services []Service, origin *Coordinates, n int) []Service {
	if len(services) == 0 {
		return []Service{}
	}

	located := WithCoordinates(services)
	if origin == nil || len(located) == 0 {
		return Sample(services, n)
	}

	distance := func(s Service) float64 {
		return HaversineMeters(*origin, Coordinates{Latitude: *s.Latitude, Longitude: *s.Longitude})
	}

	slices.SortStableFunc(located, func(a, b Service) int { return cmp.Compare(distance(a), distance(b)) })

	return located[:min(n, len(located))]
}
