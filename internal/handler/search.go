package handler

import (
	"net/http"

	"locality-api/internal/models"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles city search requests
type SearchHandler struct {
	service SearchService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(query, state string, limit int) ([]models.SearchResult, error)
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /search requests
//
//	@Summary	Search cities by name or state
//	@Tags		search
//	@Produce	json
//	@Param		q		query	string	true	"City or state name fragment"
//	@Param		state	query	string	false	"State code or name"
//	@Param		limit	query	int		false	"Maximum results (default 10)"
//	@Success	200		{array}	models.SearchResult
//	@Router		/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	limit, err := optionalInt(c, "limit", 0)
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := h.service.Search(c.Query("q"), c.Query("state"), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
