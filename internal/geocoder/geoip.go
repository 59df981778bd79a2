package geocoder

import (
	"fmt"
	"net"

	"locality-api/internal/models"

	"github.com/oschwald/geoip2-golang"
)

// IPFix is what an IP database knows about an address.
type IPFix struct {
	Coordinates models.Coordinates
	CountryCode string
	PostalCode  string
}

// IPLocator maps a client IP to an approximate position.
type IPLocator interface {
	Locate(ip net.IP) (IPFix, error)
}

// GeoIPLocator reads a MaxMind GeoLite2/GeoIP2 City database.
type GeoIPLocator struct {
	reader *geoip2.Reader
}

// OpenGeoIP opens the City database at path.
func OpenGeoIP(path string) (*GeoIPLocator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geocoder: failed to open GeoIP database: %w", err)
	}
	return &GeoIPLocator{reader: reader}, nil
}

// Close releases the database.
func (l *GeoIPLocator) Close() error {
	return l.reader.Close()
}

// Locate returns the database's position for ip. Unknown addresses yield NoResult.
func (l *GeoIPLocator) Locate(ip net.IP) (IPFix, error) {
	record, err := l.reader.City(ip)
	if err != nil {
		return IPFix{}, &models.GeocodingError{Kind: models.GeocodingProviderError, Err: err}
	}
	if record.Country.IsoCode == "" && record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return IPFix{}, &models.GeocodingError{Kind: models.GeocodingNoResult, Status: "ip not in database"}
	}

	return IPFix{
		Coordinates: models.Coordinates{
			Latitude:  record.Location.Latitude,
			Longitude: record.Location.Longitude,
			Accuracy:  float64(record.Location.AccuracyRadius) * 1000,
		},
		CountryCode: record.Country.IsoCode,
		PostalCode:  record.Postal.Code,
	}, nil
}
