package handler

import (
	"net/http"
	"testing"

	"locality-api/internal/gazetteer"
	"locality-api/internal/search"
	"locality-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_EmptyQueryIgnoresFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	g, err := gazetteer.Default()
	require.NoError(t, err)
	handler := NewSearchHandler(service.NewSearchService(search.NewRanker(g), g))

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedBody   string
	}{
		{name: "no query", target: "/search", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "unknown state", target: "/search?q=&state=Atlantis", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{name: "negative limit", target: "/search?q=&limit=-1", expectedStatus: http.StatusOK, expectedBody: `[]`},
		{
			name:           "unknown state with a query",
			target:         "/search?q=pu&state=Atlantis",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid state: unknown state Atlantis", "field": "state"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(http.MethodGet, tt.target, handler.Search)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
