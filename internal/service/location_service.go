package service

import (
	"context"
	"fmt"

	"locality-api/internal/models"
)

// LocationService records where users and providers are
type LocationService struct {
	tracker  LocationTracker
	geocoder AddressResolver
	states   StateCoder
}

// LocationTracker interface for dependency injection
type LocationTracker interface {
	UpdateLocationAs(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error)
	Location(ctx context.Context, entityID string) (*models.EntityLocation, error)
}

// AddressResolver fills in the address of a bare position.
type AddressResolver interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error)
}

// StateCoder maps a state name to its code, returning "" when unknown.
type StateCoder interface {
	StateCode(stateName string) string
}

// NewLocationService creates a new location service
func NewLocationService(tracker LocationTracker, geocoder AddressResolver, states StateCoder) *LocationService {
	return &LocationService{tracker: tracker, geocoder: geocoder, states: states}
}

// UpdateLocation sets the entity's current location. A record that carries coordinates but
// no city or state is reverse geocoded first; the caller's method and accuracy are kept.
// Addresses typed in by the caller are stored unverified. A non-empty role lists the entity
// as a provider in nearby searches; an empty role keeps whatever role was stored before.
func (s *LocationService) UpdateLocation(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error) {
	if rec.City != "" || rec.State != "" {
		rec.Verified = false
		if rec.StateCode == "" {
			rec.StateCode = s.states.StateCode(rec.State)
		}
	} else {
		c := rec.Coordinates
		if err := models.ValidateCoordinates(c.Latitude, c.Longitude); err != nil {
			return nil, err
		}

		resolved, err := s.geocoder.ReverseGeocode(ctx, c.Latitude, c.Longitude)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve address: %w", err)
		}

		method := rec.Method
		rec = *resolved
		rec.Coordinates.Accuracy = c.Accuracy
		if method != "" {
			rec.Method = method
		}
	}

	loc, err := s.tracker.UpdateLocationAs(ctx, entityID, role, rec)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update location: %w", err)
	}

	return loc, nil
}

// Location returns the entity's current location, history and approximate location
func (s *LocationService) Location(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	loc, err := s.tracker.Location(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load location: %w", err)
	}

	return loc, nil
}
