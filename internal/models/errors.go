package models

import (
	"errors"
	"fmt"
)

// ErrNoLocation is returned when an entity has never had a location set.
var ErrNoLocation = errors.New("no location set for entity")

// ValidationError reports input rejected at the boundary, before any I/O or mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// OutOfServiceAreaError reports a provider-resolved point that falls outside the country box.
type OutOfServiceAreaError struct {
	Latitude  float64
	Longitude float64
}

func (e *OutOfServiceAreaError) Error() string {
	return fmt.Sprintf("location (%.6f, %.6f) is outside the service area", e.Latitude, e.Longitude)
}

// GeocodingErrorKind classifies provider failures.
type GeocodingErrorKind int

const (
	GeocodingTimeout GeocodingErrorKind = iota + 1
	GeocodingProviderError
	GeocodingNoResult
)

func (k GeocodingErrorKind) String() string {
	switch k {
	case GeocodingTimeout:
		return "timeout"
	case GeocodingProviderError:
		return "provider_error"
	case GeocodingNoResult:
		return "no_result"
	}
	return "unknown"
}

// GeocodingError is a failed call to the geocoding provider.
type GeocodingError struct {
	Kind   GeocodingErrorKind
	Status string
	Err    error
}

func (e *GeocodingError) Error() string {
	msg := "geocoding " + e.Kind.String()
	if e.Status != "" {
		msg += " (" + e.Status + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// ParseError reports a provider payload whose shape is not recognized.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "unrecognized provider response: " + e.Reason
}

// DeviceLocationErrorKind mirrors the geolocation API fault codes.
type DeviceLocationErrorKind int

const (
	DevicePermissionDenied DeviceLocationErrorKind = iota + 1
	DevicePositionUnavailable
	DeviceTimeout
)

func (k DeviceLocationErrorKind) String() string {
	switch k {
	case DevicePermissionDenied:
		return "permission_denied"
	case DevicePositionUnavailable:
		return "position_unavailable"
	case DeviceTimeout:
		return "timeout"
	}
	return "unknown"
}

// DeviceLocationError is a failure reported by (or while waiting for) the device.
type DeviceLocationError struct {
	Kind DeviceLocationErrorKind
	Err  error
}

func (e *DeviceLocationError) Error() string {
	if e.Err != nil {
		return "device location " + e.Kind.String() + ": " + e.Err.Error()
	}
	return "device location " + e.Kind.String()
}

func (e *DeviceLocationError) Unwrap() error { return e.Err }
