package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/shared/constant"
	"hotel/shared/metrics"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.BookingsResponse, error)
}

type serviceImpl struct {
	repo repository.Booking
	otel otel.Otel
}

func New(repo repository.Booking, otel otel.Otel) Booking {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Str(model.FieldID, booking.ID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttribute(model.FieldID, booking.ID)

	metrics.IncBookingCreated()

	log.Info().
		Str(model.FieldID, booking.ID).
		Str(model.FieldHotelName, booking.HotelName).
		Int(model.FieldDuration, booking.Duration).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}
