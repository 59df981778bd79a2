package handler

import (
	"context"
	"errors"
	"net/http"

	"locality-api/internal/models"
	"locality-api/internal/search"
	"locality-api/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// writeError maps domain errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	var (
		verr   *models.ValidationError
		oos    *models.OutOfServiceAreaError
		gerr   *models.GeocodingError
		derr   *models.DeviceLocationError
		status int
		body   errorResponse
	)

	switch {
	case errors.As(err, &verr):
		status, body = http.StatusBadRequest, errorResponse{Error: verr.Error(), Field: verr.Field}
	case errors.As(err, &oos):
		status, body = http.StatusUnprocessableEntity, errorResponse{Error: "location is outside the service area"}
	case errors.As(err, &derr):
		status, body = http.StatusUnprocessableEntity, errorResponse{Error: "device location unavailable", Kind: derr.Kind.String()}
	case errors.As(err, &gerr):
		switch gerr.Kind {
		case models.GeocodingNoResult:
			status, body = http.StatusNotFound, errorResponse{Error: "no matching location found"}
		case models.GeocodingTimeout:
			status, body = http.StatusGatewayTimeout, errorResponse{Error: "geocoding provider timed out"}
		default:
			status, body = http.StatusBadGateway, errorResponse{Error: "geocoding provider error"}
		}
	case errors.Is(err, models.ErrNoLocation):
		status, body = http.StatusNotFound, errorResponse{Error: "no location set"}
	case errors.Is(err, search.ErrSuperseded):
		status, body = http.StatusConflict, errorResponse{Error: "superseded by a newer request"}
	case errors.Is(err, tracker.ErrVersionConflict):
		status, body = http.StatusConflict, errorResponse{Error: "location was modified concurrently"}
	case errors.Is(err, context.DeadlineExceeded):
		status, body = http.StatusGatewayTimeout, errorResponse{Error: "request timed out"}
	default:
		status, body = http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, body)
}
