package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/location/model"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var locationsData []byte

var (
	fixture     []model.Location
	fixtureOnce sync.Once
)

type Location interface {
	GetAll(ctx context.Context) ([]model.Location, error)
}

type repositoryImpl struct {
	locations []model.Location
	otel      otel.Otel
}

// New returns a read-only repository over the embedded location fixture.
func New(otel otel.Otel) Location {
	fixtureOnce.Do(func() {
		var err error

		fixture, err = Load(locationsData)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load location fixture")
		}

		log.Info().Int("count", len(fixture)).Msg("Location fixture loaded")
	})

	return &repositoryImpl{
		locations: fixture,
		otel:      otel,
	}
}

// Load parses a YAML location list and checks every entry lies on the grid.
func Load(data []byte) ([]model.Location, error) {
	var document struct {
		Locations []model.Location `yaml:"locations"`
	}

	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse locations: %w", err)
	}

	for i := range document.Locations {
		if err := validator.ValidateStruct(&document.Locations[i]); err != nil {
			return nil, fmt.Errorf("invalid location %d (%q): %w", i, document.Locations[i].Name, err)
		}
	}

	return document.Locations, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Location, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute("count", len(repo.locations))

	return slices.Clone(repo.locations), nil
}
