package models

import (
	"fmt"
	"regexp"

	"github.com/golang/geo/s2"
)

// Country bounding box in decimal degrees, inclusive.
const (
	MinLatitude  = 6.0
	MaxLatitude  = 37.6
	MinLongitude = 68.0
	MaxLongitude = 97.25
)

var (
	serviceArea = s2.RectFromLatLng(s2.LatLngFromDegrees(MinLatitude, MinLongitude)).
		AddPoint(s2.LatLngFromDegrees(MaxLatitude, MaxLongitude))

	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// InServiceArea reports whether the point lies inside the country box, edges included.
func InServiceArea(lat, lng float64) bool {
	return serviceArea.ContainsLatLng(s2.LatLngFromDegrees(lat, lng))
}

// ValidateCoordinates rejects points outside the country box with a ValidationError.
func ValidateCoordinates(lat, lng float64) error {
	if !InServiceArea(lat, lng) {
		return &ValidationError{
			Field:  "coordinates",
			Reason: fmt.Sprintf("(%.6f, %.6f) outside [%.2f,%.2f]x[%.2f,%.2f]", lat, lng, MinLatitude, MaxLatitude, MinLongitude, MaxLongitude),
		}
	}
	return nil
}

// ValidPincode reports whether p is a six-digit pincode with a non-zero leading digit.
func ValidPincode(p string) bool {
	return pincodePattern.MatchString(p)
}

// Validate checks the invariants of a Location before it is accepted.
func (l Location) Validate() error {
	if err := ValidateCoordinates(l.Coordinates.Latitude, l.Coordinates.Longitude); err != nil {
		return err
	}
	if l.Coordinates.Accuracy < 0 {
		return &ValidationError{Field: "accuracy", Reason: "must not be negative"}
	}
	if l.Pincode != "" && !ValidPincode(l.Pincode) {
		return &ValidationError{Field: "pincode", Reason: fmt.Sprintf("%q is not a 6-digit pincode", l.Pincode)}
	}
	if !l.Method.Valid() {
		return &ValidationError{Field: "method", Reason: fmt.Sprintf("unknown method %q", l.Method)}
	}
	if l.City == "" || l.State == "" {
		return &ValidationError{Field: "city", Reason: "city and state are required"}
	}
	return nil
}
