package service

import (
	"context"
	"errors"
	"testing"

	"locality-api/internal/geocoder"
	"locality-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReverseGeocoder is a mock implementation of the ReverseGeocoder interface
type MockReverseGeocoder struct {
	mock.Mock
}

// ReverseGeocode implements ReverseGeocoder.
func (m *MockReverseGeocoder) ReverseGeocode(ctx context.Context, lat float64, lng float64) (*models.Location, error) {
	args := m.Called(ctx, lat, lng)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

// CurrentDeviceLocation implements ReverseGeocoder.
func (m *MockReverseGeocoder) CurrentDeviceLocation(ctx context.Context, locator geocoder.DeviceLocator) (*models.Location, error) {
	args := m.Called(ctx, locator)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

// ApproximateFromIP implements ReverseGeocoder.
func (m *MockReverseGeocoder) ApproximateFromIP(ctx context.Context, ip string) (*models.Location, error) {
	args := m.Called(ctx, ip)
	loc, _ := args.Get(0).(*models.Location)
	return loc, args.Error(1)
}

func TestReverseGeoCodeService_ReverseGeocode(t *testing.T) {
	tests := []struct {
		name         string
		lat          float64
		lng          float64
		mockLocation *models.Location
		mockError    error
		expected     *models.Location
		expectError  bool
	}{
		{
			name:        "zero lat and lng",
			lat:         0,
			lng:         0,
			expectError: true,
		},
		{
			name:        "outside the country",
			lat:         51.5074,
			lng:         -0.1278,
			expectError: true,
		},
		{
			name:         "successful reverse geocode",
			lat:          19.0760,
			lng:          72.8777,
			mockLocation: mumbai(),
			expected:     mumbai(),
		},
		{
			name:        "geocoder error",
			lat:         19.0760,
			lng:         72.8777,
			mockError:   &models.GeocodingError{Kind: models.GeocodingTimeout},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockGeocoder := new(MockReverseGeocoder)
			service := NewReverseGeoCodeService(mockGeocoder)

			if tt.mockLocation != nil || tt.mockError != nil {
				mockGeocoder.On("ReverseGeocode", mock.Anything, tt.lat, tt.lng).Return(tt.mockLocation, tt.mockError)
			}

			// Execute
			result, err := service.ReverseGeocode(context.Background(), tt.lat, tt.lng)

			// Assert
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockGeocoder.AssertExpectations(t)
		})
	}
}

// MockBackend is a mock implementation of the geocoder.Backend interface
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Geocode(ctx context.Context, address string) (*geocoder.Response, error) {
	args := m.Called(ctx, address)
	resp, _ := args.Get(0).(*geocoder.Response)
	return resp, args.Error(1)
}

func (m *MockBackend) ReverseGeocode(ctx context.Context, lat, lng float64) (*geocoder.Response, error) {
	args := m.Called(ctx, lat, lng)
	resp, _ := args.Get(0).(*geocoder.Response)
	return resp, args.Error(1)
}

func (m *MockBackend) Autocomplete(ctx context.Context, input string) (*geocoder.AutocompleteResponse, error) {
	args := m.Called(ctx, input)
	resp, _ := args.Get(0).(*geocoder.AutocompleteResponse)
	return resp, args.Error(1)
}

func TestReverseGeoCodeService_DeviceLocation(t *testing.T) {
	t.Run("reported fix outside the country is out of service area", func(t *testing.T) {
		backend := new(MockBackend)
		resolver := geocoder.NewResolver(backend, newTestGazetteer(t), geocoder.Options{})
		service := NewReverseGeoCodeService(resolver)

		_, err := service.DeviceLocation(context.Background(), geocoder.ReportedPosition{
			Coordinates: &models.Coordinates{Latitude: 40.7, Longitude: -74.0},
		})
		var oerr *models.OutOfServiceAreaError
		assert.ErrorAs(t, err, &oerr)
		var verr *models.ValidationError
		assert.False(t, errors.As(err, &verr))
		backend.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("fault code is passed to the resolver", func(t *testing.T) {
		reported := geocoder.ReportedPosition{ErrorCode: geocoder.CodePermissionDenied}
		mockGeocoder := new(MockReverseGeocoder)
		mockGeocoder.On("CurrentDeviceLocation", mock.Anything, reported).
			Return(nil, &models.DeviceLocationError{Kind: models.DevicePermissionDenied})
		service := NewReverseGeoCodeService(mockGeocoder)

		_, err := service.DeviceLocation(context.Background(), reported)
		var derr *models.DeviceLocationError
		assert.ErrorAs(t, err, &derr)
		assert.Equal(t, models.DevicePermissionDenied, derr.Kind)
	})

	t.Run("successful fix", func(t *testing.T) {
		reported := geocoder.ReportedPosition{Coordinates: &models.Coordinates{Latitude: 19.0760, Longitude: 72.8777, Accuracy: 12}}
		expected := mumbai()
		expected.Method = models.MethodGPS
		mockGeocoder := new(MockReverseGeocoder)
		mockGeocoder.On("CurrentDeviceLocation", mock.Anything, reported).Return(expected, nil)
		service := NewReverseGeoCodeService(mockGeocoder)

		got, err := service.DeviceLocation(context.Background(), reported)
		assert.NoError(t, err)
		assert.Equal(t, expected, got)
	})
}

func TestReverseGeoCodeService_ApproximateLocation(t *testing.T) {
	expected := &models.Location{City: "Pune", State: "Maharashtra", StateCode: "MH", Method: models.MethodAuto}

	mockGeocoder := new(MockReverseGeocoder)
	mockGeocoder.On("ApproximateFromIP", mock.Anything, "49.36.0.1").Return(expected, nil)
	mockGeocoder.On("ApproximateFromIP", mock.Anything, "8.8.8.8").
		Return(nil, &models.OutOfServiceAreaError{Latitude: 37.4, Longitude: -122.1})
	service := NewReverseGeoCodeService(mockGeocoder)

	got, err := service.ApproximateLocation(context.Background(), "49.36.0.1")
	assert.NoError(t, err)
	assert.Equal(t, expected, got)

	_, err = service.ApproximateLocation(context.Background(), "8.8.8.8")
	var oos *models.OutOfServiceAreaError
	assert.ErrorAs(t, err, &oos)
}
