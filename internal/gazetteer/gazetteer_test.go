package gazetteer

import (
	"testing"

	"locality-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	assert.Len(t, g.States(), 36)
	assert.NotEmpty(t, g.Cities())
}

func TestGazetteer_StateLookups(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name     string
		lookup   func() (models.State, bool)
		expected models.State
		found    bool
	}{
		{
			name:     "by code",
			lookup:   func() (models.State, bool) { return g.StateByCode("MH") },
			expected: models.State{Name: "Maharashtra", Code: "MH"},
			found:    true,
		},
		{
			name:     "by code ignores case",
			lookup:   func() (models.State, bool) { return g.StateByCode("ka") },
			expected: models.State{Name: "Karnataka", Code: "KA"},
			found:    true,
		},
		{
			name:     "by name ignores case and padding",
			lookup:   func() (models.State, bool) { return g.StateByName("  tamil nadu ") },
			expected: models.State{Name: "Tamil Nadu", Code: "TN"},
			found:    true,
		},
		{
			name:   "unknown code",
			lookup: func() (models.State, bool) { return g.StateByCode("ZZ") },
			found:  false,
		},
		{
			name:   "unknown name",
			lookup: func() (models.State, bool) { return g.StateByName("Atlantis") },
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := tt.lookup()
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, state)
		})
	}
}

func TestGazetteer_CitiesByState(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	cities := g.CitiesByState("MH")
	require.NotEmpty(t, cities)
	for _, c := range cities {
		assert.Equal(t, "Maharashtra", c.State)
	}

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Mumbai")
	assert.Contains(t, names, "Nagpur")

	assert.Empty(t, g.CitiesByState("ZZ"))
}

func TestGazetteer_MetroCities(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	metros := g.MetroCities()
	require.NotEmpty(t, metros)
	for _, c := range metros {
		assert.True(t, c.IsMetro, c.Name)
	}
}

func TestGazetteer_CitiesWithPopulation(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	big := g.CitiesWithPopulation(10_000_000)
	require.NotEmpty(t, big)
	for _, c := range big {
		assert.GreaterOrEqual(t, c.Population, 10_000_000, c.Name)
	}
	assert.Len(t, g.CitiesWithPopulation(0), len(g.Cities()))
}

func TestGazetteer_ReturnsCopies(t *testing.T) {
	g, err := Default()
	require.NoError(t, err)

	cities := g.Cities()
	cities[0].Name = "Changed"
	assert.NotEqual(t, "Changed", g.Cities()[0].Name)
}

func TestNew_Rejects(t *testing.T) {
	states := []models.State{{Name: "Goa", Code: "GA"}}

	tests := []struct {
		name   string
		states []models.State
		cities []models.City
	}{
		{
			name:   "unknown state",
			states: states,
			cities: []models.City{{Name: "Pune", State: "Maharashtra", Latitude: 18.52, Longitude: 73.85}},
		},
		{
			name:   "out of bounds city",
			states: states,
			cities: []models.City{{Name: "Lisbon", State: "Goa", Latitude: 38.72, Longitude: -9.14}},
		},
		{
			name:   "duplicate state code",
			states: []models.State{{Name: "Goa", Code: "GA"}, {Name: "Gujarat", Code: "ga"}},
		},
		{
			name:   "empty state name",
			states: []models.State{{Code: "XX"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.states, tt.cities)
			assert.Error(t, err)
			assert.Nil(t, g)
		})
	}
}
