package handler

import (
	"strconv"

	"locality-api/internal/models"

	"github.com/gin-gonic/gin"
)

func requiredFloat(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, &models.ValidationError{Field: name, Reason: "missing required query parameter"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "not a number"}
	}
	return v, nil
}

func optionalFloat(c *gin.Context, name string, def float64) (float64, error) {
	if c.Query(name) == "" {
		return def, nil
	}
	return requiredFloat(c, name)
}

func optionalInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "not an integer"}
	}
	return v, nil
}

func position(c *gin.Context) (lat, lng float64, err error) {
	if lat, err = requiredFloat(c, "lat"); err != nil {
		return 0, 0, err
	}
	if lng, err = requiredFloat(c, "lng"); err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}
