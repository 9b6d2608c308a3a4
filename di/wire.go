//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/redis"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	bookingHandler "hotel/internal/handlers/booking"

	locationRepository "hotel/internal/domains/location/repository"
	locationService "hotel/internal/domains/location/service"
	locationHandler "hotel/internal/handlers/location"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var bookerRouting = wire.NewSet(
	wire.Struct(new(router.BookerHandlers), "*"),
	bookingHandler.New,
	router.NewBooker,
)

var finderRouting = wire.NewSet(
	wire.Struct(new(router.FinderHandlers), "*"),
	locationHandler.New,
	router.NewFinder,
)

func InitializeBooker() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		bookingDomain,
		bookerRouting,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeFinder() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		locationDomain,
		finderRouting,
		http.New,
	)

	return &http.HTTP{}
}
