package geocoder

import (
	"context"

	"locality-api/internal/models"
)

// DeviceLocator abstracts the device or browser geolocation API.
type DeviceLocator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// Geolocation API fault codes as reported by browsers.
const (
	CodePermissionDenied    = 1
	CodePositionUnavailable = 2
	CodeTimeout             = 3
)

// ReportedPosition is a fix (or fault) the client obtained from its geolocation API and
// posted to us.
type ReportedPosition struct {
	Coordinates *models.Coordinates
	ErrorCode   int
	Message     string
}

func (p ReportedPosition) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}

	switch p.ErrorCode {
	case 0:
	case CodePermissionDenied:
		return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DevicePermissionDenied}
	case CodeTimeout:
		return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DeviceTimeout}
	default:
		return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DevicePositionUnavailable}
	}

	if p.Coordinates == nil {
		return models.Coordinates{}, &models.DeviceLocationError{Kind: models.DevicePositionUnavailable}
	}
	return *p.Coordinates, nil
}
