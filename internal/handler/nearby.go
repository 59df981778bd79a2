package handler

import (
	"context"
	"net/http"

	"locality-api/internal/models"
	"locality-api/internal/proximity"

	"github.com/gin-gonic/gin"
)

// DefaultRadiusKm is used when a nearby request has no radius.
const DefaultRadiusKm = 10

// NearbyHandler handles proximity requests
type NearbyHandler struct {
	service NearbyService
}

// NearbyService interface for dependency injection
type NearbyService interface {
	Providers(ctx context.Context, lat, lng, radiusKm float64, role string) ([]proximity.Match[models.Provider], error)
	Cities(lat, lng, radiusKm float64) ([]proximity.Match[models.City], error)
}

// NewNearbyHandler creates a new nearby handler
func NewNearbyHandler(svc NearbyService) *NearbyHandler {
	return &NearbyHandler{service: svc}
}

func nearbyQuery(c *gin.Context) (lat, lng, radius float64, err error) {
	if lat, lng, err = position(c); err != nil {
		return 0, 0, 0, err
	}
	if radius, err = optionalFloat(c, "radius", DefaultRadiusKm); err != nil {
		return 0, 0, 0, err
	}
	return lat, lng, radius, nil
}

// Providers handles GET /nearby requests
//
//	@Summary	Service providers within a radius, nearest first
//	@Tags		nearby
//	@Produce	json
//	@Param		lat		query	number	true	"Latitude"
//	@Param		lng		query	number	true	"Longitude"
//	@Param		radius	query	number	false	"Radius in km, 1 to 100 (default 10)"
//	@Param		role	query	string	false	"Provider role or category"
//	@Success	200		{array}	object
//	@Failure	400		{object}	errorResponse
//	@Router		/nearby [get]
func (h *NearbyHandler) Providers(c *gin.Context) {
	lat, lng, radius, err := nearbyQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	matches, err := h.service.Providers(c.Request.Context(), lat, lng, radius, c.Query("role"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// Cities handles GET /nearby/cities requests
//
//	@Summary	Cities within a radius, nearest first
//	@Tags		nearby
//	@Produce	json
//	@Param		lat		query	number	true	"Latitude"
//	@Param		lng		query	number	true	"Longitude"
//	@Param		radius	query	number	false	"Radius in km, 1 to 100 (default 10)"
//	@Success	200		{array}	object
//	@Failure	400		{object}	errorResponse
//	@Router		/nearby/cities [get]
func (h *NearbyHandler) Cities(c *gin.Context) {
	lat, lng, radius, err := nearbyQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	matches, err := h.service.Cities(lat, lng, radius)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
