package main

import (
	"strings"
	"testing"

	"locality-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviders(t *testing.T) {
	input := `name,role,category,lat,lng
Andheri Plumbing, plumber, home services, 19.1136, 72.8697
Pune Tutors,tutor,education,18.5204,73.8567
`
	providers, err := parseProviders(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []models.Provider{
		{Name: "Andheri Plumbing", Role: "plumber", Category: "home services", Coordinates: models.Coordinates{Latitude: 19.1136, Longitude: 72.8697}},
		{Name: "Pune Tutors", Role: "tutor", Category: "education", Coordinates: models.Coordinates{Latitude: 18.5204, Longitude: 73.8567}},
	}, providers)
}

func TestParseProviders_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: "failed to read header",
		},
		{
			name:    "wrong header",
			input:   "name,lat,lng,role,category\n",
			wantErr: "unexpected header",
		},
		{
			name:    "bad latitude",
			input:   "name,role,category,lat,lng\nA,plumber,,north,72.8\n",
			wantErr: "line 2: invalid latitude",
		},
		{
			name:    "outside the country",
			input:   "name,role,category,lat,lng\nA,plumber,,19.0,72.8\nB,plumber,,51.5,-0.12\n",
			wantErr: "line 3",
		},
		{
			name:    "missing role",
			input:   "name,role,category,lat,lng\nA,,,19.0,72.8\n",
			wantErr: "name and role are required",
		},
		{
			name:    "wrong column count",
			input:   "name,role,category,lat,lng\nA,plumber,19.0,72.8\n",
			wantErr: "failed to read record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseProviders(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
