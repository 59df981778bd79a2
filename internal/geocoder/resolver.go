package geocoder

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"locality-api/internal/gazetteer"
	"locality-api/internal/models"
	"locality-api/internal/proximity"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	// FallbackRadiusKm bounds how far the nearest gazetteer city may be when the provider
	// result lacks a city or state.
	FallbackRadiusKm = 50.0

	// ipFallbackRadiusKm is wider because IP positions are usually a city centroid at best.
	ipFallbackRadiusKm = 150.0

	// reverseCachePrecision gives geohash cells of roughly 38m x 19m.
	reverseCachePrecision = 8

	DefaultDeviceTimeout = 10 * time.Second
	DefaultCacheTTL      = 30 * time.Minute
)

// Options tunes a Resolver. Zero values pick the defaults.
type Options struct {
	CacheTTL      time.Duration
	DeviceTimeout time.Duration
	IPLocator     IPLocator
}

// Resolver turns provider payloads, device fixes and IP lookups into validated
// locations. It never retries; callers decide whether to try again.
type Resolver struct {
	backend       Backend
	gaz           *gazetteer.Gazetteer
	cache         *cache.Cache
	group         singleflight.Group
	deviceTimeout time.Duration
	ipLocator     IPLocator
	now           func() time.Time
}

// NewResolver creates a resolver over backend. g supplies city and state when the
// provider result is incomplete.
func NewResolver(backend Backend, g *gazetteer.Gazetteer, opts Options) *Resolver {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.DeviceTimeout <= 0 {
		opts.DeviceTimeout = DefaultDeviceTimeout
	}
	return &Resolver{
		backend:       backend,
		gaz:           g,
		cache:         cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		deviceTimeout: opts.DeviceTimeout,
		ipLocator:     opts.IPLocator,
		now:           time.Now,
	}
}

// ForwardGeocode resolves free-text address input.
func (r *Resolver) ForwardGeocode(ctx context.Context, address string) (*models.Location, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &models.ValidationError{Field: "address", Reason: "must not be empty"}
	}

	key := "fwd:" + strings.ToLower(address)
	loc, err := r.resolve(ctx, key, func(ctx context.Context) (*Response, error) {
		return r.backend.Geocode(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	loc.Method = models.MethodManual
	return loc, nil
}

// ReverseGeocode resolves a coordinate pair. The returned location keeps the caller's
// exact coordinates; the provider only contributes the address.
func (r *Resolver) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error) {
	if err := models.ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}

	key := "rev:" + geohash.EncodeWithPrecision(lat, lng, reverseCachePrecision)
	loc, err := r.resolve(ctx, key, func(ctx context.Context) (*Response, error) {
		return r.backend.ReverseGeocode(ctx, lat, lng)
	})
	if err != nil {
		return nil, err
	}
	loc.Coordinates = models.Coordinates{Latitude: lat, Longitude: lng}
	loc.Method = models.MethodManual
	return loc, nil
}

// CurrentDeviceLocation waits up to the device timeout for a fix from locator and
// reverse geocodes it.
func (r *Resolver) CurrentDeviceLocation(ctx context.Context, locator DeviceLocator) (*models.Location, error) {
	fix, err := r.devicePosition(ctx, locator)
	if err != nil {
		return nil, err
	}
	if !models.InServiceArea(fix.Latitude, fix.Longitude) {
		return nil, &models.OutOfServiceAreaError{Latitude: fix.Latitude, Longitude: fix.Longitude}
	}

	loc, err := r.ReverseGeocode(ctx, fix.Latitude, fix.Longitude)
	if err != nil {
		return nil, err
	}
	loc.Coordinates.Accuracy = fix.Accuracy
	loc.Method = models.MethodGPS
	return loc, nil
}

func (r *Resolver) devicePosition(ctx context.Context, locator DeviceLocator) (models.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, r.deviceTimeout)
	defer cancel()

	type result struct {
		fix models.Coordinates
		err error
	}
	ch := make(chan result, 1)
	go func() {
		fix, err := locator.CurrentPosition(ctx)
		ch <- result{fix, err}
	}()

	select {
	case res := <-ch:
		if res.err == nil {
			return res.fix, nil
		}
		var derr *models.DeviceLocationError
		switch {
		case errors.As(res.err, &derr):
			return models.Coordinates{}, res.err
		case errors.Is(res.err, context.DeadlineExceeded):
			return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DeviceTimeout, Err: res.err}
		case errors.Is(res.err, context.Canceled):
			return models.Coordinates{}, res.err
		default:
			return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DevicePositionUnavailable, Err: res.err}
		}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DeviceTimeout, Err: ctx.Err()}
		}
		return models.Coordinates{}, ctx.Err()
	}
}

// ApproximateFromIP locates a client by IP address. The result is unverified and uses
// the nearest gazetteer city for its address.
func (r *Resolver) ApproximateFromIP(ctx context.Context, ip string) (*models.Location, error) {
	if r.ipLocator == nil {
		return nil, &models.GeocodingError{Kind: models.GeocodingNoResult, Status: "ip lookup disabled"}
	}
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return nil, &models.ValidationError{Field: "ip", Reason: "not an IP address"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fix, err := r.ipLocator.Locate(parsed)
	if err != nil {
		return nil, err
	}
	if (fix.CountryCode != "" && fix.CountryCode != "IN") || !models.InServiceArea(fix.Coordinates.Latitude, fix.Coordinates.Longitude) {
		return nil, &models.OutOfServiceAreaError{Latitude: fix.Coordinates.Latitude, Longitude: fix.Coordinates.Longitude}
	}

	city, _, ok := proximity.NearestCity(r.gaz, fix.Coordinates, ipFallbackRadiusKm)
	if !ok {
		return nil, &models.GeocodingError{Kind: models.GeocodingNoResult, Status: "no city near ip location"}
	}

	loc := &models.Location{
		Coordinates: fix.Coordinates,
		City:        city.Name,
		State:       city.State,
		StateCode:   r.gaz.StateCode(city.State),
		Timestamp:   r.now().UTC(),
		Verified:    false,
		Method:      models.MethodAuto,
	}
	if models.ValidPincode(fix.PostalCode) {
		loc.Pincode = fix.PostalCode
	}
	return loc, nil
}

// Autocomplete returns place predictions for partial input.
func (r *Resolver) Autocomplete(ctx context.Context, input string) ([]models.Prediction, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []models.Prediction{}, nil
	}

	key := "ac:" + strings.ToLower(input)
	if cached, ok := r.cache.Get(key); ok {
		return append([]models.Prediction{}, cached.([]models.Prediction)...), nil
	}

	v, err := r.shared(ctx, key, func(ctx context.Context) (any, error) {
		resp, err := r.backend.Autocomplete(ctx, input)
		if err != nil {
			return nil, err
		}
		return parsePredictions(resp)
	})
	if err != nil {
		return nil, err
	}

	preds := v.([]models.Prediction)
	r.cache.SetDefault(key, preds)
	return append([]models.Prediction{}, preds...), nil
}

func parsePredictions(resp *AutocompleteResponse) ([]models.Prediction, error) {
	if resp == nil {
		return nil, &models.GeocodingError{Kind: models.GeocodingProviderError, Err: &models.ParseError{Reason: "empty response"}}
	}
	switch resp.Status {
	case statusOK:
	case statusZeroResults:
		return []models.Prediction{}, nil
	case statusOverQueryLimit, statusOverDailyLimit, statusRequestDenied, statusInvalidRequest, statusUnknownError:
		return nil, &models.GeocodingError{Kind: models.GeocodingProviderError, Status: resp.Status}
	default:
		return nil, &models.GeocodingError{
			Kind: models.GeocodingProviderError,
			Err:  &models.ParseError{Reason: "unknown status " + resp.Status},
		}
	}

	preds := make([]models.Prediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		preds = append(preds, models.Prediction{
			Description:   p.Description,
			PlaceID:       p.PlaceID,
			MainText:      p.StructuredFormatting.MainText,
			SecondaryText: p.StructuredFormatting.SecondaryText,
		})
	}
	return preds, nil
}

// resolve serves key from cache, or fetches, parses and normalizes a provider response.
// Only successful resolutions are cached.
func (r *Resolver) resolve(ctx context.Context, key string, fetch func(context.Context) (*Response, error)) (*models.Location, error) {
	if cached, ok := r.cache.Get(key); ok {
		loc := cached.(models.Location)
		loc.Timestamp = r.now().UTC()
		return &loc, nil
	}

	v, err := r.shared(ctx, key, func(ctx context.Context) (any, error) {
		resp, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		out, err := parseResponse(resp)
		if err != nil {
			return nil, &models.GeocodingError{Kind: models.GeocodingProviderError, Err: err}
		}
		return r.normalize(out)
	})
	if err != nil {
		return nil, err
	}

	loc := v.(models.Location)
	r.cache.SetDefault(key, loc)
	loc.Timestamp = r.now().UTC()
	return &loc, nil
}

// shared collapses concurrent identical lookups into one provider call while letting
// each caller give up on its own context.
func (r *Resolver) shared(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := r.group.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// normalize validates an outcome and completes it into a Location.
func (r *Resolver) normalize(out outcome) (models.Location, error) {
	switch o := out.(type) {
	case failureResult:
		return models.Location{}, &models.GeocodingError{Kind: o.kind, Status: o.status, Err: messageError(o.message)}

	case bareResult:
		if !models.InServiceArea(o.coords.Latitude, o.coords.Longitude) {
			return models.Location{}, &models.OutOfServiceAreaError{Latitude: o.coords.Latitude, Longitude: o.coords.Longitude}
		}
		city, ok := r.nearestCity(o.coords)
		if !ok {
			return models.Location{}, &models.GeocodingError{Kind: models.GeocodingNoResult, Status: "no city near result"}
		}
		return models.Location{
			Coordinates: o.coords,
			Address:     o.formatted,
			City:        city.Name,
			State:       city.State,
			StateCode:   r.gaz.StateCode(city.State),
			Verified:    true,
		}, nil

	case componentsResult:
		if !models.InServiceArea(o.coords.Latitude, o.coords.Longitude) ||
			(o.address.CountryCode != "" && o.address.CountryCode != "IN") {
			return models.Location{}, &models.OutOfServiceAreaError{Latitude: o.coords.Latitude, Longitude: o.coords.Longitude}
		}

		loc := models.Location{
			Coordinates: o.coords,
			Address:     o.formatted,
			City:        o.address.City,
			State:       o.address.State,
			Verified:    true,
		}
		if loc.Address == "" {
			loc.Address = o.address.Street
		}
		if loc.State != "" {
			loc.StateCode = stateCode(loc.State, o.address.StateCode)
		}
		if loc.City == "" || loc.State == "" {
			city, ok := r.nearestCity(o.coords)
			if !ok {
				return models.Location{}, &models.GeocodingError{Kind: models.GeocodingNoResult, Status: "result has no city or state"}
			}
			if loc.City == "" {
				loc.City = city.Name
			}
			if loc.State == "" {
				loc.State = city.State
				loc.StateCode = r.gaz.StateCode(city.State)
			}
		}
		if o.address.PostalCode != "" {
			if models.ValidPincode(o.address.PostalCode) {
				loc.Pincode = o.address.PostalCode
			} else {
				log.Debug().Str("postal_code", o.address.PostalCode).Msg("dropping malformed postal code from provider")
			}
		}
		return loc, nil
	}

	return models.Location{}, &models.GeocodingError{
		Kind: models.GeocodingProviderError,
		Err:  &models.ParseError{Reason: "unhandled outcome"},
	}
}

func (r *Resolver) nearestCity(c models.Coordinates) (models.City, bool) {
	city, _, ok := proximity.NearestCity(r.gaz, c, FallbackRadiusKm)
	return city, ok
}

func messageError(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}
