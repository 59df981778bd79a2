package service

import (
	"strings"

	"locality-api/internal/models"
)

// SearchService answers city searches from the gazetteer
type SearchService struct {
	ranker CityRanker
	states StateLookup
}

// CityRanker interface for dependency injection
type CityRanker interface {
	Search(query, stateFilter string, limit int) []models.SearchResult
}

// StateLookup resolves a state filter given as a code or a name.
type StateLookup interface {
	StateByCode(code string) (models.State, bool)
	StateByName(name string) (models.State, bool)
}

// NewSearchService creates a new search service
func NewSearchService(ranker CityRanker, states StateLookup) *SearchService {
	return &SearchService{ranker: ranker, states: states}
}

// Search returns ranked cities matching query. An empty query yields no results whatever
// the filters; otherwise an unknown state filter or a negative limit is rejected.
func (s *SearchService) Search(query, state string, limit int) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	if limit < 0 {
		return nil, &models.ValidationError{Field: "limit", Reason: "must not be negative"}
	}

	state = strings.TrimSpace(state)
	if state != "" {
		_, byCode := s.states.StateByCode(state)
		_, byName := s.states.StateByName(state)
		if !byCode && !byName {
			return nil, &models.ValidationError{Field: "state", Reason: "unknown state " + state}
		}
	}

	return s.ranker.Search(query, state, limit), nil
}
