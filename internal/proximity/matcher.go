// Package proximity finds candidates within a radius of a point.
//
// Every query is a linear scan over the candidate set, which is fine for a few thousand
// candidates per call. A geohash or R-tree index would be the next step if that changes.
package proximity

import (
	"fmt"
	"sort"
	"strings"

	"locality-api/internal/gazetteer"
	"locality-api/internal/models"

	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusKm is the mean earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	MinRadiusKm = 1.0
	MaxRadiusKm = 100.0
)

// Locatable is anything with a position.
type Locatable interface {
	Position() models.Coordinates
}

// Match pairs a candidate with its distance from the query origin.
type Match[T any] struct {
	Candidate  T       `json:"candidate"`
	DistanceKm float64 `json:"distanceKm"`
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	// s2.LatLng.Distance uses the haversine formula.
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * EarthRadiusKm
}

// ValidateRadius rejects radii outside [MinRadiusKm, MaxRadiusKm].
func ValidateRadius(radiusKm float64) error {
	if !(radiusKm >= MinRadiusKm && radiusKm <= MaxRadiusKm) {
		return &models.ValidationError{
			Field:  "radius",
			Reason: fmt.Sprintf("%g km is outside [%g, %g]", radiusKm, MinRadiusKm, MaxRadiusKm),
		}
	}
	return nil
}

// Within returns the candidates no farther than radiusKm from origin, nearest first.
// keep, when non-nil, filters candidates before distances are computed. Candidates at
// equal distance keep their input order.
func Within[T Locatable](origin models.Coordinates, radiusKm float64, candidates []T, keep func(T) bool) ([]Match[T], error) {
	if err := models.ValidateCoordinates(origin.Latitude, origin.Longitude); err != nil {
		return nil, err
	}
	if err := ValidateRadius(radiusKm); err != nil {
		return nil, err
	}
	return scan(origin, radiusKm, candidates, keep), nil
}

func scan[T Locatable](origin models.Coordinates, radiusKm float64, candidates []T, keep func(T) bool) []Match[T] {
	matches := []Match[T]{}
	for _, c := range candidates {
		if keep != nil && !keep(c) {
			continue
		}
		p := c.Position()
		d := Haversine(origin.Latitude, origin.Longitude, p.Latitude, p.Longitude)
		if d <= radiusKm {
			matches = append(matches, Match[T]{Candidate: c, DistanceKm: d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})
	return matches
}

// City adapts a gazetteer city to Locatable.
type City models.City

func (c City) Position() models.Coordinates {
	return models.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

// Provider adapts a service provider to Locatable.
type Provider models.Provider

func (p Provider) Position() models.Coordinates { return p.Coordinates }

func cityCandidates(g *gazetteer.Gazetteer) []City {
	all := g.Cities()
	candidates := make([]City, len(all))
	for i, c := range all {
		candidates[i] = City(c)
	}
	return candidates
}

// Cities returns the gazetteer cities within radiusKm of origin, nearest first.
func Cities(g *gazetteer.Gazetteer, origin models.Coordinates, radiusKm float64) ([]Match[models.City], error) {
	matches, err := Within(origin, radiusKm, cityCandidates(g), nil)
	if err != nil {
		return nil, err
	}
	out := make([]Match[models.City], len(matches))
	for i, m := range matches {
		out[i] = Match[models.City]{Candidate: models.City(m.Candidate), DistanceKm: m.DistanceKm}
	}
	return out, nil
}

// NearestCity returns the closest gazetteer city within radiusKm of origin.
// Unlike Cities it accepts any positive radius so callers can widen the search for
// fallbacks. ok is false when no city is close enough.
func NearestCity(g *gazetteer.Gazetteer, origin models.Coordinates, radiusKm float64) (models.City, float64, bool) {
	matches := scan(origin, radiusKm, cityCandidates(g), nil)
	if len(matches) == 0 {
		return models.City{}, 0, false
	}
	return models.City(matches[0].Candidate), matches[0].DistanceKm, true
}

// Providers returns providers within radiusKm of origin, nearest first. role, when
// non-empty, must equal the provider's role or category (case-insensitive).
func Providers(origin models.Coordinates, radiusKm float64, providers []models.Provider, role string) ([]Match[models.Provider], error) {
	candidates := make([]Provider, len(providers))
	for i, p := range providers {
		candidates[i] = Provider(p)
	}

	var keep func(Provider) bool
	if role != "" {
		keep = func(p Provider) bool {
			return strings.EqualFold(p.Role, role) || strings.EqualFold(p.Category, role)
		}
	}

	matches, err := Within(origin, radiusKm, candidates, keep)
	if err != nil {
		return nil, err
	}
	out := make([]Match[models.Provider], len(matches))
	for i, m := range matches {
		out[i] = Match[models.Provider]{Candidate: models.Provider(m.Candidate), DistanceKm: m.DistanceKm}
	}
	return out, nil
}
