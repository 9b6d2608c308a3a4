package service

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/location/model"
	"hotel/internal/domains/location/model/dto"
	"hotel/internal/domains/location/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/metrics"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	messageNoLocations = "No locations available in the database."
	messageNoClosest   = "Could not determine the closest location."
)

type Location interface {
	GetAll(ctx context.Context) (dto.LocationsResponse, error)
	FindClosest(ctx context.Context, req dto.CoordinatesQuery) (dto.ClosestLocationResponse, error)
}

type serviceImpl struct {
	repo repository.Location
	otel otel.Otel
}

func New(repo repository.Location, otel otel.Otel) Location {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.LocationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	locations, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	res.FromModels(locations)

	return res, nil
}

func (s *serviceImpl) FindClosest(ctx context.Context, req dto.CoordinatesQuery) (res dto.ClosestLocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindClosest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateQueryStruct(&req); err != nil {
		return res, err
	}

	res.InputCoordinates.FromQuery(req)
	x, y := res.InputCoordinates.X, res.InputCoordinates.Y

	scope.SetAttributes(map[string]any{
		model.FieldX: x,
		model.FieldY: y,
	})

	locations, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	if len(locations) == 0 {
		return res, failure.NotFound(messageNoLocations) //nolint:wrapcheck
	}

	closest, distance, ok := model.Closest(locations, x, y)
	if !ok {
		log.Error().Int(model.FieldX, x).Int(model.FieldY, y).Msg("no closest location among a non-empty fixture")

		return res, failure.InternalError(errors.New(messageNoClosest)) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		model.FieldName:     closest.Name,
		model.FieldDistance: distance,
	})

	metrics.IncClosestLookup(closest.Name)

	log.Debug().
		Int(model.FieldX, x).
		Int(model.FieldY, y).
		Str(model.FieldName, closest.Name).
		Float64(model.FieldDistance, distance).
		Msg("closest location found")

	res.ClosestLocation.FromModel(closest)
	res.Distance = distance

	return res, nil
}
