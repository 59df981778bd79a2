package repository

import (
	"context"

	"locality-api/internal/models"
)

// ProviderFinder is implemented by every source of provider candidates: the imported
// directory in PostgreSQL and each location store's tracked entities.
type ProviderFinder interface {
	FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error)
}

// ProviderSources queries several finders and concatenates their candidates in order.
type ProviderSources []ProviderFinder

// FindProvidersNear stops at the first failing source.
func (s ProviderSources) FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error) {
	providers := []models.Provider{}
	for _, src := range s {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		found, err := src.FindProvidersNear(ctx, lat, lng, radiusKm, role)
		if err != nil {
			return nil, err
		}
		providers = append(providers, found...)
	}
	return providers, nil
}
