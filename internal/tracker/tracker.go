// Package tracker maintains each entity's current location, its recent history and the
// derived approximate location as a single unit.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"locality-api/internal/models"

	"github.com/rs/zerolog/log"
)

// MaxHistory is the number of superseded locations kept per entity.
const MaxHistory = 3

const lockStripes = 64

// Tracker applies location updates. Updates to the same entity are serialized; updates to
// different entities proceed in parallel.
type Tracker struct {
	store Store
	now   func() time.Time

	locks [lockStripes]sync.Mutex
}

// New creates a tracker backed by store.
func New(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

func (t *Tracker) lockFor(entityID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(entityID))
	return &t.locks[h.Sum32()%lockStripes]
}

// UpdateLocation makes rec the entity's current location. The previous current location,
// if any, is pushed onto the front of the history, the history is cut to MaxHistory
// entries and the approximate location is recomputed. Either all of that is stored or
// none of it is. The entity's stored role is left as it was.
func (t *Tracker) UpdateLocation(ctx context.Context, entityID string, rec models.Location) (*models.EntityLocation, error) {
	return t.UpdateLocationAs(ctx, entityID, "", rec)
}

// UpdateLocationAs is UpdateLocation that also sets the entity's role when role is not
// empty. Entities with a role are returned by provider proximity searches.
func (t *Tracker) UpdateLocationAs(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error) {
	if strings.TrimSpace(entityID) == "" {
		return nil, &models.ValidationError{Field: "entityId", Reason: "must not be empty"}
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = t.now().UTC()
	}

	mu := t.lockFor(entityID)
	mu.Lock()
	defer mu.Unlock()

	prev, err := t.store.Get(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("tracker: failed to load location: %w", err)
	}
	if prev == nil {
		prev = &models.EntityLocation{EntityID: entityID}
	}

	next := apply(prev, strings.TrimSpace(role), rec)

	// Nothing has been written yet, so an abandoned request leaves the stored snapshot as it was.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := t.store.Save(ctx, next, prev.Version); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			log.Warn().Str("entity_id", entityID).Int64("version", prev.Version).Msg("location update lost a version race")
		}
		return nil, fmt.Errorf("tracker: failed to save location: %w", err)
	}

	log.Debug().
		Str("entity_id", entityID).
		Str("city", rec.City).
		Str("role", next.Role).
		Str("method", string(rec.Method)).
		Int64("version", next.Version).
		Msg("location updated")

	return next.Clone(), nil
}

// apply builds the snapshot that follows prev once rec is accepted.
func apply(prev *models.EntityLocation, role string, rec models.Location) *models.EntityLocation {
	next := &models.EntityLocation{
		EntityID: prev.EntityID,
		Role:     prev.Role,
		Version:  prev.Version + 1,
	}
	if role != "" {
		next.Role = role
	}

	history := make([]models.HistoryEntry, 0, MaxHistory)
	if prev.Current != nil {
		history = append(history, prev.Current.Trim())
	}
	history = append(history, prev.History...)
	if len(history) > MaxHistory {
		history = history[:MaxHistory]
	}
	next.History = history

	cur := rec
	next.Current = &cur
	next.Approximate = &models.ApproximateLocation{
		City:        rec.City,
		State:       rec.State,
		Region:      RegionFor(rec.State),
		LastUpdated: rec.Timestamp,
	}
	return next
}

// Location returns the entity's snapshot, or models.ErrNoLocation if none was ever set.
func (t *Tracker) Location(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	loc, err := t.store.Get(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("tracker: failed to load location: %w", err)
	}
	if loc == nil || loc.Current == nil {
		return nil, models.ErrNoLocation
	}
	return loc, nil
}
