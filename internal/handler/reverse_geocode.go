package handler

import (
	"context"
	"net/http"

	"locality-api/internal/geocoder"
	"locality-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles requests that turn a position into a location
type ReverseGeocodeHandler struct {
	service ReverseGeoCodeService
}

// ReverseGeoCodeService interface for dependency injection
type ReverseGeoCodeService interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Location, error)
	DeviceLocation(ctx context.Context, reported geocoder.ReportedPosition) (*models.Location, error)
	ApproximateLocation(ctx context.Context, ip string) (*models.Location, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc ReverseGeoCodeService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /reverse-geocode requests
//
//	@Summary	Resolve coordinates to an address
//	@Tags		geocoding
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lng	query		number	true	"Longitude"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Router		/reverse-geocode [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	lat, lng, err := position(c)
	if err != nil {
		writeError(c, err)
		return
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// deviceLocationRequest is what the browser reports from navigator.geolocation:
// either a fix or the numeric error code of the failure.
type deviceLocationRequest struct {
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	Accuracy  float64  `json:"accuracy"`
	ErrorCode int      `json:"errorCode"`
	Message   string   `json:"message"`
}

// DeviceLocation handles POST /device-location requests
//
//	@Summary	Resolve a position reported by the client device
//	@Tags		geocoding
//	@Accept		json
//	@Produce	json
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	errorResponse
//	@Failure	422	{object}	errorResponse
//	@Router		/device-location [post]
func (h *ReverseGeocodeHandler) DeviceLocation(c *gin.Context) {
	var req deviceLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reported := geocoder.ReportedPosition{ErrorCode: req.ErrorCode, Message: req.Message}
	if req.ErrorCode == 0 {
		if req.Lat == nil || req.Lng == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "either lat and lng or errorCode is required"})
			return
		}
		reported.Coordinates = &models.Coordinates{Latitude: *req.Lat, Longitude: *req.Lng, Accuracy: req.Accuracy}
	}

	location, err := h.service.DeviceLocation(c.Request.Context(), reported)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// ApproximateLocation handles GET /approximate-location requests
//
//	@Summary	Estimate the caller's location from its IP address
//	@Tags		geocoding
//	@Produce	json
//	@Success	200	{object}	models.Location
//	@Failure	404	{object}	errorResponse
//	@Failure	422	{object}	errorResponse
//	@Router		/approximate-location [get]
func (h *ReverseGeocodeHandler) ApproximateLocation(c *gin.Context) {
	location, err := h.service.ApproximateLocation(c.Request.Context(), c.ClientIP())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}
