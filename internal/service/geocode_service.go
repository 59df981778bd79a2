package service

import (
	"context"
	"fmt"
	"strings"

	"locality-api/internal/models"
)

// GeoCodeService contains the business logic for forward geocoding and place suggestions
type GeoCodeService struct {
	geocoder  ForwardGeocoder
	debouncer Debouncer
}

// ForwardGeocoder interface for dependency injection
type ForwardGeocoder interface {
	ForwardGeocode(ctx context.Context, address string) (*models.Location, error)
	Autocomplete(ctx context.Context, input string) ([]models.Prediction, error)
}

// Debouncer schedules search-as-you-type work per client session.
type Debouncer interface {
	Do(ctx context.Context, key string, fn func(context.Context) error) error
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(geocoder ForwardGeocoder, debouncer Debouncer) *GeoCodeService {
	return &GeoCodeService{geocoder: geocoder, debouncer: debouncer}
}

// Geocode resolves free-form address text to a location
func (s *GeoCodeService) Geocode(ctx context.Context, address string) (*models.Location, error) {
	if strings.TrimSpace(address) == "" {
		return nil, &models.ValidationError{Field: "q", Reason: "address cannot be empty"}
	}

	location, err := s.geocoder.ForwardGeocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: failed to geocode address: %w", err)
	}

	return location, nil
}

// Autocomplete returns place predictions for partial input. Calls sharing a session ID
// are debounced: a newer call supersedes an older one that has not finished.
func (s *GeoCodeService) Autocomplete(ctx context.Context, sessionID, input string) ([]models.Prediction, error) {
	if strings.TrimSpace(input) == "" {
		return []models.Prediction{}, nil
	}

	var predictions []models.Prediction
	err := s.debouncer.Do(ctx, sessionID, func(ctx context.Context) error {
		var err error
		predictions, err = s.geocoder.Autocomplete(ctx, input)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to autocomplete %q: %w", input, err)
	}

	return predictions, nil
}
