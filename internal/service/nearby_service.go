package service

import (
	"context"
	"fmt"

	"locality-api/internal/gazetteer"
	"locality-api/internal/models"
	"locality-api/internal/proximity"
)

// NearbyService finds service providers and cities around a point
type NearbyService struct {
	repo ProviderRepository
	gaz  *gazetteer.Gazetteer
}

// ProviderRepository interface for dependency injection. Implementations may return
// candidates outside the radius; exact distances are computed here.
type ProviderRepository interface {
	FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error)
}

// NewNearbyService creates a new nearby service
func NewNearbyService(repo ProviderRepository, gaz *gazetteer.Gazetteer) *NearbyService {
	return &NearbyService{repo: repo, gaz: gaz}
}

func validateQuery(lat, lng, radiusKm float64) error {
	if err := models.ValidateCoordinates(lat, lng); err != nil {
		return err
	}
	return proximity.ValidateRadius(radiusKm)
}

// Providers returns providers within radiusKm of the point, nearest first
func (s *NearbyService) Providers(ctx context.Context, lat, lng, radiusKm float64, role string) ([]proximity.Match[models.Provider], error) {
	if err := validateQuery(lat, lng, radiusKm); err != nil {
		return nil, err
	}

	candidates, err := s.repo.FindProvidersNear(ctx, lat, lng, radiusKm, role)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find providers: %w", err)
	}

	origin := models.Coordinates{Latitude: lat, Longitude: lng}
	return proximity.Providers(origin, radiusKm, candidates, role)
}

// Cities returns gazetteer cities within radiusKm of the point, nearest first
func (s *NearbyService) Cities(lat, lng, radiusKm float64) ([]proximity.Match[models.City], error) {
	if err := validateQuery(lat, lng, radiusKm); err != nil {
		return nil, err
	}

	return proximity.Cities(s.gaz, models.Coordinates{Latitude: lat, Longitude: lng}, radiusKm)
}
