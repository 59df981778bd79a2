package service

import (
	"context"
	"fmt"

	"locality-api/internal/geocoder"
	"locality-api/internal/models"
)

// ReverseGeoCodeService contains the business logic for turning positions into locations
type ReverseGeoCodeService struct {
	geocoder ReverseGeocoder
}

// ReverseGeocoder interface for dependency injection
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error)
	CurrentDeviceLocation(ctx context.Context, locator geocoder.DeviceLocator) (*models.Location, error)
	ApproximateFromIP(ctx context.Context, ip string) (*models.Location, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(geocoder ReverseGeocoder) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{geocoder: geocoder}
}

// ReverseGeocode finds the address at the given coordinates
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error) {
	if err := models.ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	location, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reverse geocode: %w", err)
	}

	return location, nil
}

// DeviceLocation resolves the fix (or fault) a client reported from its geolocation API.
// A fix outside the country is the resolver's OutOfServiceArea, not a bad request.
func (s *ReverseGeoCodeService) DeviceLocation(ctx context.Context, reported geocoder.ReportedPosition) (*models.Location, error) {
	location, err := s.geocoder.CurrentDeviceLocation(ctx, reported)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve device location: %w", err)
	}

	return location, nil
}

// ApproximateLocation estimates a client's location from its IP address
func (s *ReverseGeoCodeService) ApproximateLocation(ctx context.Context, ip string) (*models.Location, error) {
	location, err := s.geocoder.ApproximateFromIP(ctx, ip)
	if err != nil {
		return nil, fmt.Errorf("service: failed to locate ip: %w", err)
	}

	return location, nil
}
