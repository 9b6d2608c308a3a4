package dto_test

import (
	"encoding/json"
	"testing"

	"hotel/internal/domains/location/model"
	"hotel/internal/domains/location/model/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinates_FromQuery(t *testing.T) {
	x, y := 30, 40

	var coords dto.Coordinates
	coords.FromQuery(dto.CoordinatesQuery{X: &x, Y: &y})

	assert.Equal(t, dto.Coordinates{X: 30, Y: 40}, coords)
}

func TestLocationsResponse_FromModels(t *testing.T) {
	var res dto.LocationsResponse
	res.FromModels([]model.Location{
		{Name: "Central Hub Hostel", X: 50, Y: 50},
		{Name: "South West Inn", X: 10, Y: 10},
	})

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"Central Hub Hostel","x":50,"y":50},
		{"name":"South West Inn","x":10,"y":10}
	]`, string(body))
}

func TestLocationsResponse_FromModels_EmptyList(t *testing.T) {
	var res dto.LocationsResponse
	res.FromModels(nil)

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(body))
}

func TestClosestLocationResponse_JSON(t *testing.T) {
	res := dto.ClosestLocationResponse{
		InputCoordinates: dto.Coordinates{X: 0, Y: 0},
		ClosestLocation:  dto.LocationResponse{Name: "South West Inn", X: 10, Y: 10},
		Distance:         14.142135623730951,
	}

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"input_coordinates": {"x": 0, "y": 0},
		"closest_location": {"name": "South West Inn", "x": 10, "y": 10},
		"distance": 14.142135623730951
	}`, string(body))
}
