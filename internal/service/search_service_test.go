package service

import (
	"testing"

	"locality-api/internal/models"
	"locality-api/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	g := newTestGazetteer(t)
	service := NewSearchService(search.NewRanker(g), g)

	tests := []struct {
		name        string
		query       string
		state       string
		limit       int
		firstCity   string
		expectError bool
	}{
		{name: "query only", query: "mum", firstCity: "Mumbai"},
		{name: "state filter by code", query: "a", state: "mh", limit: 3},
		{name: "state filter by name", query: "pune", state: "Maharashtra", firstCity: "Pune"},
		{name: "unknown state", query: "pune", state: "Atlantis", expectError: true},
		{name: "negative limit", query: "pune", limit: -1, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Search(tt.query, tt.state, tt.limit)
			if tt.expectError {
				var verr *models.ValidationError
				assert.ErrorAs(t, err, &verr)
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, results)
			if tt.firstCity != "" {
				assert.Equal(t, tt.firstCity, results[0].City)
			}
			if tt.limit > 0 {
				assert.LessOrEqual(t, len(results), tt.limit)
			}
			if tt.state != "" {
				for _, r := range results {
					assert.Equal(t, "MH", r.StateCode)
				}
			}
		})
	}
}

func TestSearchService_EmptyQuery(t *testing.T) {
	g := newTestGazetteer(t)
	service := NewSearchService(search.NewRanker(g), g)

	tests := []struct {
		name  string
		query string
		state string
		limit int
	}{
		{name: "blank query", query: "   "},
		{name: "unknown state filter", query: "", state: "Atlantis"},
		{name: "negative limit", query: "", limit: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Search(tt.query, tt.state, tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, results)
			assert.Empty(t, results)
		})
	}
}
