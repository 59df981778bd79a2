// Package geocoder resolves addresses, coordinates, device fixes and client IPs into
// normalized locations using an external geocoding/places provider.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"locality-api/internal/models"

	"github.com/rs/zerolog/log"
)

// Backend is the raw provider API. Client is the HTTP implementation.
type Backend interface {
	Geocode(ctx context.Context, address string) (*Response, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*Response, error)
	Autocomplete(ctx context.Context, input string) (*AutocompleteResponse, error)
}

// Client talks to a Google-Maps-compatible geocoding and places API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client. timeout bounds every request.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Geocode calls the forward geocoding endpoint, restricted to India.
func (c *Client) Geocode(ctx context.Context, address string) (*Response, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("components", "country:IN")

	var resp Response
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ReverseGeocode calls the reverse geocoding endpoint.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*Response, error) {
	params := url.Values{}
	params.Set("latlng", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))

	var resp Response
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Autocomplete calls the places autocomplete endpoint, restricted to India.
func (c *Client) Autocomplete(ctx context.Context, input string) (*AutocompleteResponse, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("components", "country:in")

	var resp AutocompleteResponse
	if err := c.get(ctx, "/place/autocomplete/json", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &models.GeocodingError{Kind: models.GeocodingProviderError, Err: err}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("geocoding provider call")

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &models.GeocodingError{Kind: models.GeocodingProviderError, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if isTimeout(err) {
			return transportError(err)
		}
		return &models.GeocodingError{
			Kind: models.GeocodingProviderError,
			Err:  &models.ParseError{Reason: fmt.Sprintf("invalid JSON: %v", err)},
		}
	}
	return nil
}

// transportError classifies a failed round trip. A cancelled caller context is returned
// as is; it is not the provider's fault.
func transportError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return err
	case isTimeout(err):
		return &models.GeocodingError{Kind: models.GeocodingTimeout, Err: err}
	default:
		return &models.GeocodingError{Kind: models.GeocodingProviderError, Err: err}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
