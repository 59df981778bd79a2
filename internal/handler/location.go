package handler

import (
	"context"
	"net/http"

	"locality-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles reads and writes of an entity's stored location
type LocationHandler struct {
	service LocationService
}

// LocationService interface for dependency injection
type LocationService interface {
	UpdateLocation(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error)
	Location(ctx context.Context, entityID string) (*models.EntityLocation, error)
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// updateLocationRequest carries either a full address or just a position. A bare
// position is reverse geocoded before it is stored. Role, when set, lists the entity as a
// service provider in nearby searches.
type updateLocationRequest struct {
	Role      string   `json:"role"`
	Lat       *float64 `json:"lat" binding:"required"`
	Lng       *float64 `json:"lng" binding:"required"`
	Accuracy  float64  `json:"accuracy"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	StateCode string   `json:"stateCode"`
	Pincode   string   `json:"pincode"`
	Method    string   `json:"method"`
}

// Get handles GET /entities/:id/location requests
//
//	@Summary	Current location, history and approximate location of an entity
//	@Tags		locations
//	@Produce	json
//	@Param		id	path		string	true	"User or provider ID"
//	@Success	200	{object}	models.EntityLocation
//	@Failure	404	{object}	errorResponse
//	@Router		/entities/{id}/location [get]
func (h *LocationHandler) Get(c *gin.Context) {
	loc, err := h.service.Location(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

// Update handles PUT /entities/:id/location requests
//
//	@Summary	Replace the current location of an entity
//	@Tags		locations
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string					true	"User or provider ID"
//	@Param		location	body		updateLocationRequest	true	"Position, optional address and optional provider role"
//	@Success	200			{object}	models.EntityLocation
//	@Failure	400			{object}	errorResponse
//	@Failure	409			{object}	errorResponse
//	@Router		/entities/{id}/location [put]
func (h *LocationHandler) Update(c *gin.Context) {
	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: lat and lng are required"})
		return
	}

	method := models.Method(req.Method)
	if method == "" {
		method = models.MethodManual
	}

	rec := models.Location{
		Coordinates: models.Coordinates{Latitude: *req.Lat, Longitude: *req.Lng, Accuracy: req.Accuracy},
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		StateCode:   req.StateCode,
		Pincode:     req.Pincode,
		Method:      method,
	}

	loc, err := h.service.UpdateLocation(c.Request.Context(), c.Param("id"), req.Role, rec)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}
