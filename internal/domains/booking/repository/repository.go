package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"slices"
	"sync"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetAll(ctx context.Context) ([]model.Booking, error)
}

// repositoryImpl keeps bookings for the lifetime of the process, in insertion order.
type repositoryImpl struct {
	mu       sync.RWMutex
	bookings []model.Booking
	index    map[string]int
	otel     otel.Otel
}

func New(otel otel.Otel) Booking {
	return &repositoryImpl{
		index: make(map[string]int),
		otel:  otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanName("Insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(model.FieldID, booking.ID)

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.index[booking.ID]; exists {
		return failure.Conflict(fmt.Sprintf("%s %s already exists", model.EntityName, booking.ID)) //nolint:wrapcheck
	}

	repo.index[booking.ID] = len(repo.bookings)
	repo.bookings = append(repo.bookings, booking)

	return nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, spanName("GetAll"))
	defer scope.End()

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	scope.SetAttribute("count", len(repo.bookings))

	return slices.Clone(repo.bookings), nil
}

func spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, operation)
}
