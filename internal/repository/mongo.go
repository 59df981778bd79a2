package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"locality-api/internal/models"
	"locality-api/internal/tracker"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// locationField is the embedded subdocument on the owning user or provider document.
const locationField = "location"

type locationDoc struct {
	Role        string                      `bson:"role,omitempty"`
	Current     *models.Location            `bson:"current"`
	History     []models.HistoryEntry       `bson:"history"`
	Approximate *models.ApproximateLocation `bson:"approximateLocation,omitempty"`
	Version     int64                       `bson:"version"`
}

type ownerDoc struct {
	ID       string       `bson:"_id"`
	Location *locationDoc `bson:"location,omitempty"`
}

// ConnectMongo opens a client and verifies the primary is reachable.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repository: failed to ping mongo: %w", err)
	}
	return client, nil
}

// MongoLocationStore keeps an entity's location embedded in its owning document
// (one document per user or provider). It implements tracker.Store.
type MongoLocationStore struct {
	coll *mongo.Collection
}

// NewMongoLocationStore wraps the collection holding the owning documents.
func NewMongoLocationStore(coll *mongo.Collection) *MongoLocationStore {
	return &MongoLocationStore{coll: coll}
}

func (s *MongoLocationStore) Get(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	var doc ownerDoc
	opts := options.FindOne().SetProjection(bson.M{locationField: 1})
	err := s.coll.FindOne(ctx, bson.M{"_id": entityID}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to load location: %w", err)
	}
	if doc.Location == nil || doc.Location.Current == nil {
		return nil, nil
	}

	history := doc.Location.History
	if history == nil {
		history = []models.HistoryEntry{}
	}
	return &models.EntityLocation{
		EntityID:    entityID,
		Role:        doc.Location.Role,
		Current:     doc.Location.Current,
		History:     history,
		Approximate: doc.Location.Approximate,
		Version:     doc.Location.Version,
	}, nil
}

// Save replaces the embedded subdocument with one update. The filter on the stored
// version turns a concurrent write into tracker.ErrVersionConflict.
func (s *MongoLocationStore) Save(ctx context.Context, loc *models.EntityLocation, expectedVersion int64) error {
	update := bson.M{"$set": bson.M{locationField: locationDoc{
		Role:        loc.Role,
		Current:     loc.Current,
		History:     loc.History,
		Approximate: loc.Approximate,
		Version:     loc.Version,
	}}}

	var filter bson.M
	opts := options.Update()
	if expectedVersion == 0 {
		// The owning document may not exist yet; upsert creates it.
		filter = bson.M{"_id": loc.EntityID, locationField + ".version": bson.M{"$exists": false}}
		opts.SetUpsert(true)
	} else {
		filter = bson.M{"_id": loc.EntityID, locationField + ".version": expectedVersion}
	}

	res, err := s.coll.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		// An upsert that collides on _id means someone else wrote the location first.
		if mongo.IsDuplicateKeyError(err) {
			return tracker.ErrVersionConflict
		}
		return fmt.Errorf("repository: failed to save location: %w", err)
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return tracker.ErrVersionConflict
	}
	return nil
}

// FindProvidersNear returns owning documents whose location has a role and whose current
// position lies inside the bounding box of the radius around the given point.
func (s *MongoLocationStore) FindProvidersNear(ctx context.Context, lat, lng, radiusKm float64, role string) ([]models.Provider, error) {
	minLat, maxLat, minLng, maxLng := boundingBox(lat, lng, radiusKm)

	roleFilter := bson.M{"$exists": true, "$ne": ""}
	if role != "" {
		roleFilter = bson.M{"$regex": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(role) + "$", Options: "i"}}
	}
	filter := bson.M{
		locationField + ".role":                          roleFilter,
		locationField + ".current.coordinates.latitude":  bson.M{"$gte": minLat, "$lte": maxLat},
		locationField + ".current.coordinates.longitude": bson.M{"$gte": minLng, "$lte": maxLng},
	}
	opts := options.Find().
		SetProjection(bson.M{locationField: 1}).
		SetSort(bson.M{"_id": 1})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute tracked provider query: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []ownerDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("repository: failed to decode tracked providers: %w", err)
	}

	providers := make([]models.Provider, 0, len(docs))
	for _, doc := range docs {
		if doc.Location == nil || doc.Location.Current == nil {
			continue
		}
		providers = append(providers, models.Provider{
			ID:          doc.ID,
			Role:        doc.Location.Role,
			Coordinates: doc.Location.Current.Coordinates,
		})
	}
	return providers, nil
}
