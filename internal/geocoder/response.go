package geocoder

import (
	"fmt"
	"strings"

	"locality-api/internal/models"
)

// Response is the provider's geocoding payload as it arrives on the wire.
type Response struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message,omitempty"`
	Results      []Result `json:"results"`
}

type Result struct {
	AddressComponents []Component `json:"address_components"`
	FormattedAddress  string      `json:"formatted_address"`
	Geometry          Geometry    `json:"geometry"`
}

type Component struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Geometry struct {
	Location struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	} `json:"location"`
}

// AutocompleteResponse is the provider's places autocomplete payload.
type AutocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Predictions  []struct {
		Description          string `json:"description"`
		PlaceID              string `json:"place_id"`
		StructuredFormatting struct {
			MainText      string `json:"main_text"`
			SecondaryText string `json:"secondary_text"`
		} `json:"structured_formatting"`
	} `json:"predictions"`
}

// Provider status values.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusOverDailyLimit = "OVER_DAILY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"
	statusInvalidRequest = "INVALID_REQUEST"
	statusUnknownError   = "UNKNOWN_ERROR"
)

// outcome is exactly one of componentsResult, bareResult or failureResult.
type outcome interface {
	isOutcome()
}

// componentsResult is a successful lookup that carried address components.
type componentsResult struct {
	coords    models.Coordinates
	formatted string
	address   Address
}

// bareResult is a successful lookup with coordinates but no address components.
type bareResult struct {
	coords    models.Coordinates
	formatted string
}

// failureResult is a well-formed provider failure.
type failureResult struct {
	kind    models.GeocodingErrorKind
	status  string
	message string
}

func (componentsResult) isOutcome() {}
func (bareResult) isOutcome()       {}
func (failureResult) isOutcome()    {}

// Address holds the normalized address fields.
type Address struct {
	Street      string
	City        string
	State       string
	StateCode   string
	PostalCode  string
	Country     string
	CountryCode string
}

type addressField int

const (
	fieldStreetNumber addressField = iota + 1
	fieldRoute
	fieldLocality
	fieldAdminLevel3
	fieldState
	fieldPostalCode
	fieldCountry
)

// componentFields maps provider component types onto address fields. Types not listed
// (sublocality, political, neighborhood, ...) carry nothing we store.
var componentFields = map[string]addressField{
	"street_number":               fieldStreetNumber,
	"route":                       fieldRoute,
	"locality":                    fieldLocality,
	"administrative_area_level_3": fieldAdminLevel3,
	"administrative_area_level_1": fieldState,
	"postal_code":                 fieldPostalCode,
	"country":                     fieldCountry,
}

// parseResponse turns a raw payload into an outcome, or a *models.ParseError when the
// payload does not have any shape we know.
func parseResponse(r *Response) (outcome, error) {
	if r == nil {
		return nil, &models.ParseError{Reason: "empty response"}
	}

	switch r.Status {
	case statusOK:
	case statusZeroResults:
		return failureResult{kind: models.GeocodingNoResult, status: r.Status}, nil
	case statusOverQueryLimit, statusOverDailyLimit, statusRequestDenied, statusInvalidRequest, statusUnknownError:
		return failureResult{kind: models.GeocodingProviderError, status: r.Status, message: r.ErrorMessage}, nil
	default:
		return nil, &models.ParseError{Reason: fmt.Sprintf("unknown status %q", r.Status)}
	}

	if len(r.Results) == 0 {
		return failureResult{kind: models.GeocodingNoResult, status: r.Status}, nil
	}

	first := r.Results[0]
	loc := first.Geometry.Location
	if loc.Lat == nil || loc.Lng == nil {
		return nil, &models.ParseError{Reason: "result has no geometry"}
	}
	coords := models.Coordinates{Latitude: *loc.Lat, Longitude: *loc.Lng}

	if len(first.AddressComponents) == 0 {
		return bareResult{coords: coords, formatted: first.FormattedAddress}, nil
	}

	addr, err := mapComponents(first.AddressComponents)
	if err != nil {
		return nil, err
	}
	return componentsResult{coords: coords, formatted: first.FormattedAddress, address: addr}, nil
}

func mapComponents(components []Component) (Address, error) {
	var (
		addr                  Address
		number, route         string
		locality, adminLevel3 string
	)

	for i, c := range components {
		if strings.TrimSpace(c.LongName) == "" || len(c.Types) == 0 {
			return Address{}, &models.ParseError{Reason: fmt.Sprintf("address component %d has no name or types", i)}
		}
		for _, typ := range c.Types {
			switch componentFields[typ] {
			case fieldStreetNumber:
				number = c.LongName
			case fieldRoute:
				route = c.LongName
			case fieldLocality:
				locality = c.LongName
			case fieldAdminLevel3:
				adminLevel3 = c.LongName
			case fieldState:
				addr.State = c.LongName
				addr.StateCode = c.ShortName
			case fieldPostalCode:
				addr.PostalCode = c.LongName
			case fieldCountry:
				addr.Country = c.LongName
				addr.CountryCode = c.ShortName
			}
		}
	}

	addr.Street = strings.TrimSpace(number + " " + route)
	addr.City = locality
	if addr.City == "" {
		addr.City = adminLevel3
	}
	return addr, nil
}

// stateCode returns the provider's own code when it looks like one, otherwise the first
// two letters of the state name upper-cased. The fallback is lossy: states sharing a
// two-letter prefix collide.
func stateCode(state, providerCode string) string {
	if isStateCode(providerCode) {
		return providerCode
	}
	runes := []rune(strings.TrimSpace(state))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func isStateCode(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
