// Package search ranks gazetteer cities against partial text queries.
package search

import (
	"sort"
	"strings"

	"locality-api/internal/gazetteer"
	"locality-api/internal/models"
)

// DefaultLimit is used when the caller passes a limit below one.
const DefaultLimit = 10

type tier int

const (
	tierExact tier = iota
	tierPrefix
	tierSubstring
)

type candidate struct {
	city models.City
	tier tier
}

// Ranker orders gazetteer cities by match tier, then metro flag, then population.
type Ranker struct {
	gaz *gazetteer.Gazetteer
}

// NewRanker creates a ranker over g.
func NewRanker(g *gazetteer.Gazetteer) *Ranker {
	return &Ranker{gaz: g}
}

// Search matches query case-insensitively against city and state names. stateFilter, when
// non-empty, is a state code or name; an unknown filter matches nothing. Results are
// exact name matches first, then name prefix matches, then any other substring match.
func (r *Ranker) Search(query, stateFilter string, limit int) []models.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.SearchResult{}
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	var filterState string
	if f := strings.TrimSpace(stateFilter); f != "" {
		s, ok := r.gaz.StateByCode(f)
		if !ok {
			s, ok = r.gaz.StateByName(f)
		}
		if !ok {
			return []models.SearchResult{}
		}
		filterState = s.Name
	}

	var matches []candidate
	for _, c := range r.gaz.Cities() {
		if filterState != "" && !strings.EqualFold(c.State, filterState) {
			continue
		}
		name := strings.ToLower(c.Name)
		switch {
		case name == q:
			matches = append(matches, candidate{city: c, tier: tierExact})
		case strings.HasPrefix(name, q):
			matches = append(matches, candidate{city: c, tier: tierPrefix})
		case strings.Contains(name, q), strings.Contains(strings.ToLower(c.State), q):
			matches = append(matches, candidate{city: c, tier: tierSubstring})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.city.IsMetro != b.city.IsMetro {
			return a.city.IsMetro
		}
		return a.city.Population > b.city.Population
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]models.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, models.SearchResult{
			City:      m.city.Name,
			State:     m.city.State,
			StateCode: r.gaz.StateCode(m.city.State),
			Latitude:  m.city.Latitude,
			Longitude: m.city.Longitude,
		})
	}
	return results
}
