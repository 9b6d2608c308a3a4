package repository_test

import (
	"context"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/location/model"
	"hotel/internal/domains/location/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationRepository_Fixture(t *testing.T) {
	repo := repository.New(mocks.NewOtel())

	locations, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Location{
		{Name: "Central Hub Hostel", X: 50, Y: 50},
		{Name: "North Outpost BnB", X: 50, Y: 95},
		{Name: "East Market Hotel", X: 90, Y: 50},
		{Name: "South West Inn", X: 10, Y: 10},
		{Name: "Library Properties", X: 25, Y: 75},
		{Name: "Cafe Hotel", X: 70, Y: 30},
		{Name: "Park Entrance Residences", X: 5, Y: 40},
	}, locations)
}

func TestLocationRepository_GetAllIsIdempotent(t *testing.T) {
	repo := repository.New(mocks.NewOtel())
	ctx := context.Background()

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)

	first[0].Name = "mutated"

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Central Hub Hostel", second[0].Name)

	third, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{
			name: "valid",
			data: "locations:\n  - {name: A, x: 0, y: 99}\n  - {name: B, x: 99, y: 0}\n",
			want: 2,
		},
		{
			name: "empty list",
			data: "locations: []\n",
			want: 0,
		},
		{
			name:    "x out of range",
			data:    "locations:\n  - {name: A, x: 100, y: 0}\n",
			wantErr: true,
		},
		{
			name:    "negative y",
			data:    "locations:\n  - {name: A, x: 1, y: -1}\n",
			wantErr: true,
		},
		{
			name:    "missing name",
			data:    "locations:\n  - {x: 1, y: 1}\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "locations: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations, err := repository.Load([]byte(tt.data))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Len(t, locations, tt.want)
		})
	}
}
