package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locality-api/internal/gazetteer"
	"locality-api/internal/models"
	"locality-api/internal/repository"
	"locality-api/internal/service"
	"locality-api/internal/tracker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationService is a mock implementation of the LocationService interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) UpdateLocation(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error) {
	args := m.Called(ctx, entityID, role, rec)
	loc, _ := args.Get(0).(*models.EntityLocation)
	return loc, args.Error(1)
}

func (m *MockLocationService) Location(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	args := m.Called(ctx, entityID)
	loc, _ := args.Get(0).(*models.EntityLocation)
	return loc, args.Error(1)
}

func newLocationRouter(svc LocationService) *gin.Engine {
	r := gin.New()
	h := NewLocationHandler(svc)
	r.GET("/entities/:id/location", h.Get)
	r.PUT("/entities/:id/location", h.Update)
	return r
}

func TestLocationHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := &models.EntityLocation{
		EntityID: "user-1",
		Current:  mumbaiLocation(),
		History:  []models.HistoryEntry{},
		Approximate: &models.ApproximateLocation{
			City: "Mumbai", State: "Maharashtra", Region: "West", LastUpdated: ts,
		},
		Version: 4,
	}

	mockSvc := new(MockLocationService)
	mockSvc.On("Location", mock.Anything, "user-1").Return(stored, nil)
	mockSvc.On("Location", mock.Anything, "user-2").Return(nil, models.ErrNoLocation)
	r := newLocationRouter(mockSvc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entities/user-1/location", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var body interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, toJSON(t, stored), body)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entities/user-2/location", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "no location set"}`, w.Body.String())
}

func TestLocationHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectRole     string
		expectRecord   *models.Location
		mockError      error
		expectedStatus int
	}{
		{
			name: "full address defaults to manual",
			body: `{"lat": 19.076, "lng": 72.8777, "city": "Mumbai", "state": "Maharashtra", "pincode": "400001"}`,
			expectRecord: &models.Location{
				Coordinates: models.Coordinates{Latitude: 19.076, Longitude: 72.8777},
				City:        "Mumbai",
				State:       "Maharashtra",
				Pincode:     "400001",
				Method:      models.MethodManual,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "bare gps position of a provider",
			body:       `{"lat": 19.076, "lng": 72.8777, "accuracy": 8, "method": "gps", "role": "plumber"}`,
			expectRole: "plumber",
			expectRecord: &models.Location{
				Coordinates: models.Coordinates{Latitude: 19.076, Longitude: 72.8777, Accuracy: 8},
				Method:      models.MethodGPS,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing coordinates",
			body:           `{"city": "Mumbai"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid pincode",
			body: `{"lat": 19.076, "lng": 72.8777, "city": "Mumbai", "state": "Maharashtra", "pincode": "012345"}`,
			expectRecord: &models.Location{
				Coordinates: models.Coordinates{Latitude: 19.076, Longitude: 72.8777},
				City:        "Mumbai",
				State:       "Maharashtra",
				Pincode:     "012345",
				Method:      models.MethodManual,
			},
			mockError:      &models.ValidationError{Field: "pincode", Reason: "not a pincode"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "lost a concurrent write",
			body: `{"lat": 19.076, "lng": 72.8777, "city": "Mumbai", "state": "Maharashtra"}`,
			expectRecord: &models.Location{
				Coordinates: models.Coordinates{Latitude: 19.076, Longitude: 72.8777},
				City:        "Mumbai",
				State:       "Maharashtra",
				Method:      models.MethodManual,
			},
			mockError:      tracker.ErrVersionConflict,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockLocationService)
			if tt.expectRecord != nil {
				var result *models.EntityLocation
				if tt.mockError == nil {
					result = &models.EntityLocation{EntityID: "provider-3", Current: tt.expectRecord, History: []models.HistoryEntry{}, Version: 1}
				}
				mockSvc.On("UpdateLocation", mock.Anything, "provider-3", tt.expectRole, *tt.expectRecord).Return(result, tt.mockError)
			}
			r := newLocationRouter(mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/entities/provider-3/location", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationUpdateMovesProviderInNearby(t *testing.T) {
	gin.SetMode(gin.TestMode)

	g, err := gazetteer.Default()
	require.NoError(t, err)
	store := tracker.NewMemoryStore()

	locations := NewLocationHandler(service.NewLocationService(tracker.New(store), nil, g))
	nearby := NewNearbyHandler(service.NewNearbyService(repository.ProviderSources{store}, g))
	r := gin.New()
	r.PUT("/entities/:id/location", locations.Update)
	r.GET("/nearby", nearby.Providers)

	put := func(id, body string) {
		req := httptest.NewRequest(http.MethodPut, "/entities/"+id+"/location", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	nearbyIDs := func(target string) []string {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var body []struct {
			Candidate  models.Provider `json:"candidate"`
			DistanceKm float64         `json:"distanceKm"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		ids := []string{}
		for _, m := range body {
			ids = append(ids, m.Candidate.ID)
		}
		return ids
	}

	put("provider-3", `{"lat": 18.5204, "lng": 73.8567, "city": "Pune", "state": "Maharashtra", "role": "electrician"}`)
	put("user-1", `{"lat": 19.076, "lng": 72.8777, "city": "Mumbai", "state": "Maharashtra"}`)
	assert.Equal(t, []string{}, nearbyIDs("/nearby?lat=19.076&lng=72.8777&role=electrician"))

	put("provider-3", `{"lat": 19.0596, "lng": 72.8295, "city": "Mumbai", "state": "Maharashtra"}`)
	assert.Equal(t, []string{"provider-3"}, nearbyIDs("/nearby?lat=19.076&lng=72.8777&role=electrician"))
	assert.Equal(t, []string{"provider-3"}, nearbyIDs("/nearby?lat=19.076&lng=72.8777"))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(requestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "trace-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-42", w.Header().Get(requestIDHeader))
	assert.Equal(t, "trace-42", w.Body.String())
}
