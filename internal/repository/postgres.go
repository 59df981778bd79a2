package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"locality-api/internal/models"
	"locality-api/internal/proximity"
	"locality-api/internal/tracker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements provider lookups for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// boundingBox returns the lat/lng window that contains every point within radiusKm of
// (lat, lng). It over-covers; exact distances are computed by the caller.
func boundingBox(lat, lng, radiusKm float64) (minLat, maxLat, minLng, maxLng float64) {
	const kmPerDegree = math.Pi * proximity.EarthRadiusKm / 180
	dLat := radiusKm / kmPerDegree
	dLng := radiusKm / (kmPerDegree * math.Max(math.Cos(lat*math.Pi/180), 0.01))
	return lat - dLat, lat + dLat, lng - dLng, lng + dLng
}

// FindProvidersNear returns providers inside the bounding box of the radius around the
// given point. role, when non-empty, matches role or category case-insensitively.
func (r *Repository) FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error) {
	minLat, maxLat, minLng, maxLng := boundingBox(lat, lng, radiusKm)

	sql := `
		SELECT
			id::text,
			name,
			role,
			category,
			latitude,
			longitude
		FROM providers
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		  AND ($5::text = '' OR lower(role) = lower($5::text) OR lower(category) = lower($5::text))
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql, minLat, maxLat, minLng, maxLng, role)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute provider query: %w", err)
	}
	defer rows.Close()

	providers := []models.Provider{}
	for rows.Next() {
		var p models.Provider
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Role,
			&p.Category,
			&p.Coordinates.Latitude,
			&p.Coordinates.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan provider: %w", err)
		}
		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return providers, nil
}

// LocationStore keeps entity locations in PostgreSQL. It implements tracker.Store.
type LocationStore struct {
	db *pgxpool.Pool
}

// NewLocationStore creates a PostgreSQL location store
func NewLocationStore(db *pgxpool.Pool) *LocationStore {
	return &LocationStore{db: db}
}

// Get loads the snapshot for entityID, or nil if there is none.
func (s *LocationStore) Get(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	sql := `
		SELECT role, current, history, approximate, version
		FROM entity_locations
		WHERE entity_id = $1
	`

	var current, history, approximate []byte
	loc := &models.EntityLocation{EntityID: entityID}
	err := s.db.QueryRow(ctx, sql, entityID).Scan(&loc.Role, &current, &history, &approximate, &loc.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load location: %w", err)
	}

	if err := json.Unmarshal(current, &loc.Current); err != nil {
		return nil, fmt.Errorf("repository: failed to decode current location: %w", err)
	}
	if err := json.Unmarshal(history, &loc.History); err != nil {
		return nil, fmt.Errorf("repository: failed to decode history: %w", err)
	}
	if loc.History == nil {
		loc.History = []models.HistoryEntry{}
	}
	if approximate != nil {
		if err := json.Unmarshal(approximate, &loc.Approximate); err != nil {
			return nil, fmt.Errorf("repository: failed to decode approximate location: %w", err)
		}
	}
	return loc, nil
}

// Save writes the whole snapshot in one statement, guarded by expectedVersion.
func (s *LocationStore) Save(ctx context.Context, loc *models.EntityLocation, expectedVersion int64) error {
	current, err := json.Marshal(loc.Current)
	if err != nil {
		return fmt.Errorf("repository: failed to encode current location: %w", err)
	}
	history, err := json.Marshal(loc.History)
	if err != nil {
		return fmt.Errorf("repository: failed to encode history: %w", err)
	}
	approximate, err := json.Marshal(loc.Approximate)
	if err != nil {
		return fmt.Errorf("repository: failed to encode approximate location: %w", err)
	}

	// latitude and longitude mirror current for the provider query.
	var lat, lng *float64
	if loc.Current != nil {
		lat, lng = &loc.Current.Coordinates.Latitude, &loc.Current.Coordinates.Longitude
	}

	var sql string
	args := []any{loc.EntityID, current, history, approximate, loc.Version, loc.Role, lat, lng}
	if expectedVersion == 0 {
		sql = `
			INSERT INTO entity_locations (entity_id, current, history, approximate, version, role, latitude, longitude, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
			ON CONFLICT (entity_id) DO NOTHING
		`
	} else {
		sql = `
			UPDATE entity_locations
			SET current = $2, history = $3, approximate = $4, version = $5,
				role = $6, latitude = $7, longitude = $8, updated_at = now()
			WHERE entity_id = $1 AND version = $9
		`
		args = append(args, expectedVersion)
	}

	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("repository: failed to save location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return tracker.ErrVersionConflict
	}
	return nil
}

// FindProvidersNear returns tracked entities with a role inside the bounding box of the
// radius around the given point. role, when non-empty, matches case-insensitively.
func (s *LocationStore) FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error) {
	minLat, maxLat, minLng, maxLng := boundingBox(lat, lng, radiusKm)

	sql := `
		SELECT entity_id, role, latitude, longitude
		FROM entity_locations
		WHERE role <> ''
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		  AND ($5::text = '' OR lower(role) = lower($5::text))
		ORDER BY entity_id
	`

	rows, err := s.db.Query(ctx, sql, minLat, maxLat, minLng, maxLng, role)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute tracked provider query: %w", err)
	}

	providers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Provider, error) {
		var p models.Provider
		err := row.Scan(&p.ID, &p.Role, &p.Coordinates.Latitude, &p.Coordinates.Longitude)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan tracked provider: %w", err)
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers, nil
}
