package service

import (
	"context"
	"testing"

	"locality-api/internal/models"
	"locality-api/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocationTracker is a mock implementation of the LocationTracker interface
type MockLocationTracker struct {
	mock.Mock
}

// UpdateLocationAs implements LocationTracker.
func (m *MockLocationTracker) UpdateLocationAs(ctx context.Context, entityID, role string, rec models.Location) (*models.EntityLocation, error) {
	args := m.Called(ctx, entityID, role, rec)
	loc, _ := args.Get(0).(*models.EntityLocation)
	return loc, args.Error(1)
}

// Location implements LocationTracker.
func (m *MockLocationTracker) Location(ctx context.Context, entityID string) (*models.EntityLocation, error) {
	args := m.Called(ctx, entityID)
	loc, _ := args.Get(0).(*models.EntityLocation)
	return loc, args.Error(1)
}

func TestLocationService_UpdateLocationWithAddress(t *testing.T) {
	// The caller claims a verified record and omits the state code.
	rec := *mumbai()
	rec.StateCode = ""

	stored := *mumbai()
	stored.Verified = false
	expected := &models.EntityLocation{EntityID: "user-1", Current: &stored, History: []models.HistoryEntry{}, Version: 1}

	mockTracker := new(MockLocationTracker)
	mockTracker.On("UpdateLocationAs", mock.Anything, "user-1", "", stored).Return(expected, nil)
	mockGeocoder := new(MockReverseGeocoder)
	service := NewLocationService(mockTracker, mockGeocoder, newTestGazetteer(t))

	got, err := service.UpdateLocation(context.Background(), "user-1", "", rec)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	mockGeocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_UpdateLocationResolvesBarePosition(t *testing.T) {
	resolved := mumbai()
	rec := models.Location{
		Coordinates: models.Coordinates{Latitude: 19.0760, Longitude: 72.8777, Accuracy: 15},
		Method:      models.MethodGPS,
	}

	want := *resolved
	want.Coordinates.Accuracy = 15
	want.Method = models.MethodGPS

	mockGeocoder := new(MockReverseGeocoder)
	mockGeocoder.On("ReverseGeocode", mock.Anything, 19.0760, 72.8777).Return(resolved, nil)
	mockTracker := new(MockLocationTracker)
	mockTracker.On("UpdateLocationAs", mock.Anything, "provider-7", "plumber", want).
		Return(&models.EntityLocation{EntityID: "provider-7", Role: "plumber", Current: &want, Version: 3}, nil)

	service := NewLocationService(mockTracker, mockGeocoder, newTestGazetteer(t))
	got, err := service.UpdateLocation(context.Background(), "provider-7", "plumber", rec)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, "Mumbai", got.Current.City)
	assert.Equal(t, "plumber", got.Role)

	mockGeocoder.AssertExpectations(t)
	mockTracker.AssertExpectations(t)
}

func TestLocationService_UpdateLocationErrors(t *testing.T) {
	t.Run("bare position outside the country", func(t *testing.T) {
		mockTracker := new(MockLocationTracker)
		service := NewLocationService(mockTracker, new(MockReverseGeocoder), newTestGazetteer(t))

		_, err := service.UpdateLocation(context.Background(), "user-1", "", models.Location{
			Coordinates: models.Coordinates{Latitude: 0, Longitude: 0},
		})
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr)
		mockTracker.AssertNotCalled(t, "UpdateLocationAs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("address lookup fails", func(t *testing.T) {
		mockGeocoder := new(MockReverseGeocoder)
		mockGeocoder.On("ReverseGeocode", mock.Anything, 19.0760, 72.8777).
			Return(nil, &models.GeocodingError{Kind: models.GeocodingTimeout})
		mockTracker := new(MockLocationTracker)
		service := NewLocationService(mockTracker, mockGeocoder, newTestGazetteer(t))

		_, err := service.UpdateLocation(context.Background(), "user-1", "", models.Location{
			Coordinates: models.Coordinates{Latitude: 19.0760, Longitude: 72.8777},
		})
		var gerr *models.GeocodingError
		assert.ErrorAs(t, err, &gerr)
		mockTracker.AssertNotCalled(t, "UpdateLocationAs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("tracker conflict", func(t *testing.T) {
		rec := *mumbai()
		mockTracker := new(MockLocationTracker)
		mockTracker.On("UpdateLocationAs", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil, tracker.ErrVersionConflict)
		service := NewLocationService(mockTracker, new(MockReverseGeocoder), newTestGazetteer(t))

		_, err := service.UpdateLocation(context.Background(), "user-1", "", rec)
		assert.ErrorIs(t, err, tracker.ErrVersionConflict)
	})
}

func TestLocationService_Location(t *testing.T) {
	mockTracker := new(MockLocationTracker)
	mockTracker.On("Location", mock.Anything, "nobody").Return(nil, models.ErrNoLocation)
	service := NewLocationService(mockTracker, new(MockReverseGeocoder), newTestGazetteer(t))

	_, err := service.Location(context.Background(), "nobody")
	assert.ErrorIs(t, err, models.ErrNoLocation)
}
