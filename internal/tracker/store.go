package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"

	"locality-api/internal/models"
)

// ErrVersionConflict is returned by a Store when the stored version is not the one the
// writer read. The write is not applied.
var ErrVersionConflict = errors.New("location was modified concurrently")

// Store persists the location part of an owning document.
// Implementations can use any backend: in-memory, PostgreSQL, MongoDB.
type Store interface {
	// Get returns the stored snapshot, or nil, nil if the entity has no location yet.
	Get(ctx context.Context, entityID string) (*models.EntityLocation, error)

	// Save replaces the whole snapshot if the stored version equals expectedVersion
	// (zero meaning "not stored yet"), otherwise it returns ErrVersionConflict.
	Save(ctx context.Context, loc *models.EntityLocation, expectedVersion int64) error
}

// MemoryStore keeps snapshots in RAM. Snapshots are copied on the way in and out so
// readers never observe a write in progress.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*models.EntityLocation
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*models.EntityLocation),
	}
}

func (m *MemoryStore) Get(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.data[entityID].Clone(), nil
}

func (m *MemoryStore) Save(ctx context.Context, loc *models.EntityLocation, expectedVersion int64) error {
	if loc == nil {
		return errors.New("tracker: nil location")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var stored int64
	if cur, ok := m.data[loc.EntityID]; ok {
		stored = cur.Version
	}
	if stored != expectedVersion {
		return ErrVersionConflict
	}
	m.data[loc.EntityID] = loc.Clone()
	return nil
}

// FindProvidersNear returns every stored entity that has a role matching role (any role
// when role is empty). Distances are left to the caller.
func (m *MemoryStore) FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	providers := []models.Provider{}
	for id, loc := range m.data {
		if loc.Role == "" || loc.Current == nil {
			continue
		}
		if role != "" && !strings.EqualFold(loc.Role, role) {
			continue
		}
		providers = append(providers, models.Provider{
			ID:          id,
			Role:        loc.Role,
			Coordinates: loc.Current.Coordinates,
		})
	}
	return providers, nil
}
