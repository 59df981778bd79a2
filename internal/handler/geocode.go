package handler

import (
	"context"
	"net/http"

	"locality-api/internal/models"

	"github.com/gin-gonic/gin"
)

const sessionHeader = "X-Session-ID"

// GeoCodeHandler handles geocoding and place suggestion requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection
type GeoCodeService interface {
	Geocode(ctx context.Context, address string) (*models.Location, error)
	Autocomplete(ctx context.Context, sessionID, input string) ([]models.Prediction, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests
//
//	@Summary	Resolve an address to a location
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"Address text"
//	@Success	200	{object}	models.Location
//	@Failure	400	{object}	errorResponse
//	@Failure	404	{object}	errorResponse
//	@Failure	422	{object}	errorResponse
//	@Failure	502	{object}	errorResponse
//	@Failure	504	{object}	errorResponse
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	location, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// Autocomplete handles GET /places/autocomplete requests. Requests carrying the same
// X-Session-ID are debounced; a superseded request gets 409.
//
//	@Summary	Suggest places for partial input
//	@Tags		geocoding
//	@Produce	json
//	@Param		input			query		string	true	"Partial place name"
//	@Param		X-Session-ID	header		string	false	"Debounce key"
//	@Success	200				{array}		models.Prediction
//	@Failure	409				{object}	errorResponse
//	@Router		/places/autocomplete [get]
func (h *GeoCodeHandler) Autocomplete(c *gin.Context) {
	predictions, err := h.service.Autocomplete(c.Request.Context(), c.GetHeader(sessionHeader), c.Query("input"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, predictions)
}
