package models

import "time"

// Method records how a location was obtained.
type Method string

const (
	MethodGPS    Method = "gps"
	MethodManual Method = "manual"
	MethodAuto   Method = "auto"
)

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGPS, MethodManual, MethodAuto:
		return true
	}
	return false
}

// State is a state or union territory.
type State struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// City is a gazetteer row. State holds the state name.
type City struct {
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	IsMetro    bool    `json:"isMetro"`
	Population int     `json:"population,omitempty"`
}

// Coordinates is a point in decimal degrees. Accuracy is in meters and is zero when unknown.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// Location represents a resolved place: coordinates plus the normalized address the
// marketplace stores against a user or provider.
type Location struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	StateCode   string      `json:"stateCode"`
	Pincode     string      `json:"pincode,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
	Verified    bool        `json:"verified"`
	Method      Method      `json:"method"`
}

// HistoryEntry is the trimmed copy of a superseded Location.
type HistoryEntry struct {
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address,omitempty"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Timestamp   time.Time   `json:"timestamp"`
	Method      Method      `json:"method"`
}

// Trim returns the history form of l.
func (l Location) Trim() HistoryEntry {
	return HistoryEntry{
		Coordinates: l.Coordinates,
		Address:     l.Address,
		City:        l.City,
		State:       l.State,
		Timestamp:   l.Timestamp,
		Method:      l.Method,
	}
}

// ApproximateLocation is the privacy-reduced summary derived from the current location.
type ApproximateLocation struct {
	City        string    `json:"city"`
	State       string    `json:"state"`
	Region      string    `json:"region"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// EntityLocation is the location part of an owning document (a user or provider profile).
// Version increases by one on every successful update. A non-empty Role makes the entity a
// candidate in provider proximity searches.
type EntityLocation struct {
	EntityID    string               `json:"entityId"`
	Role        string               `json:"role,omitempty"`
	Current     *Location            `json:"current,omitempty"`
	History     []HistoryEntry       `json:"history"`
	Approximate *ApproximateLocation `json:"approximateLocation,omitempty"`
	Version     int64                `json:"version"`
}

// Clone returns a deep copy so callers never share slices or pointers with a store.
func (e *EntityLocation) Clone() *EntityLocation {
	if e == nil {
		return nil
	}
	out := &EntityLocation{EntityID: e.EntityID, Role: e.Role, Version: e.Version}
	if e.Current != nil {
		cur := *e.Current
		out.Current = &cur
	}
	if e.Approximate != nil {
		approx := *e.Approximate
		out.Approximate = &approx
	}
	out.History = append([]HistoryEntry{}, e.History...)
	return out
}

// SearchResult is one ranked gazetteer hit.
type SearchResult struct {
	City      string  `json:"city"`
	State     string  `json:"state"`
	StateCode string  `json:"stateCode"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Provider is a service provider that can be matched by proximity. Directory entries carry
// their numeric row ID; tracked entities carry their entity ID.
type Provider struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	Role        string      `json:"role"`
	Category    string      `json:"category,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Prediction is a places-autocomplete suggestion.
type Prediction struct {
	Description   string `json:"description"`
	PlaceID       string `json:"placeId"`
	MainText      string `json:"mainText,omitempty"`
	SecondaryText string `json:"secondaryText,omitempty"`
}
