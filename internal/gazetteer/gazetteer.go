// Package gazetteer holds the immutable reference set of states and cities that search,
// proximity matching and geocoding fall back on.
package gazetteer

import (
	"fmt"
	"strings"

	"locality-api/internal/models"
)

// Gazetteer is a read-only city and state dataset. It never changes after New returns,
// so any number of goroutines may read it without synchronization.
type Gazetteer struct {
	states []models.State
	cities []models.City

	stateByCode map[string]int
	stateByName map[string]int
}

// New copies states and cities into a gazetteer, rejecting rows that would violate the
// country bounds or reference an unknown state.
func New(states []models.State, cities []models.City) (*Gazetteer, error) {
	g := &Gazetteer{
		states:      append([]models.State(nil), states...),
		cities:      append([]models.City(nil), cities...),
		stateByCode: make(map[string]int, len(states)),
		stateByName: make(map[string]int, len(states)),
	}

	for i, s := range g.states {
		if s.Name == "" || s.Code == "" {
			return nil, fmt.Errorf("gazetteer: state %d has an empty name or code", i)
		}
		code, name := normalize(s.Code), normalize(s.Name)
		if _, dup := g.stateByCode[code]; dup {
			return nil, fmt.Errorf("gazetteer: duplicate state code %q", s.Code)
		}
		if _, dup := g.stateByName[name]; dup {
			return nil, fmt.Errorf("gazetteer: duplicate state name %q", s.Name)
		}
		g.stateByCode[code] = i
		g.stateByName[name] = i
	}

	for _, c := range g.cities {
		if c.Name == "" {
			return nil, fmt.Errorf("gazetteer: city with empty name in state %q", c.State)
		}
		if _, ok := g.stateByName[normalize(c.State)]; !ok {
			return nil, fmt.Errorf("gazetteer: city %q references unknown state %q", c.Name, c.State)
		}
		if !models.InServiceArea(c.Latitude, c.Longitude) {
			return nil, fmt.Errorf("gazetteer: city %q at (%f, %f) is outside the service area", c.Name, c.Latitude, c.Longitude)
		}
		if c.Population < 0 {
			return nil, fmt.Errorf("gazetteer: city %q has negative population", c.Name)
		}
	}

	return g, nil
}

// Default builds the gazetteer from the built-in dataset.
func Default() (*Gazetteer, error) {
	return New(defaultStates, defaultCities)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// States returns a copy of every state.
func (g *Gazetteer) States() []models.State {
	return append([]models.State(nil), g.states...)
}

// Cities returns a copy of every city in dataset order.
func (g *Gazetteer) Cities() []models.City {
	return append([]models.City(nil), g.cities...)
}

// StateByCode looks up a state by its short code, ignoring case.
func (g *Gazetteer) StateByCode(code string) (models.State, bool) {
	i, ok := g.stateByCode[normalize(code)]
	if !ok {
		return models.State{}, false
	}
	return g.states[i], true
}

// StateByName looks up a state by its full name, ignoring case.
func (g *Gazetteer) StateByName(name string) (models.State, bool) {
	i, ok := g.stateByName[normalize(name)]
	if !ok {
		return models.State{}, false
	}
	return g.states[i], true
}

// StateCode returns the code for a state name, or "" when the state is unknown.
func (g *Gazetteer) StateCode(stateName string) string {
	s, ok := g.StateByName(stateName)
	if !ok {
		return ""
	}
	return s.Code
}

// CitiesByState returns the cities of the state with the given code.
func (g *Gazetteer) CitiesByState(code string) []models.City {
	s, ok := g.StateByCode(code)
	if !ok {
		return []models.City{}
	}
	return g.filter(func(c models.City) bool { return strings.EqualFold(c.State, s.Name) })
}

// MetroCities returns every metro-flagged city.
func (g *Gazetteer) MetroCities() []models.City {
	return g.filter(func(c models.City) bool { return c.IsMetro })
}

// CitiesWithPopulation returns cities whose population is at least min.
func (g *Gazetteer) CitiesWithPopulation(min int) []models.City {
	return g.filter(func(c models.City) bool { return c.Population >= min })
}

func (g *Gazetteer) filter(keep func(models.City) bool) []models.City {
	out := []models.City{}
	for _, c := range g.cities {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
