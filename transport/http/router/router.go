package router

import (
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/location"
	"hotel/shared/constant"

	"github.com/go-chi/chi/v5"
)

type BookerHandlers struct {
	Booking booking.Handler
}

type FinderHandlers struct {
	Location location.Handler
}

// Router mounts the domain routes of a single service.
type Router struct {
	Service string
	mount   func(router chi.Router)
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.mount != nil {
		r.mount(router)
	}
}

func NewBooker(domainHandlers BookerHandlers) Router {
	return Router{
		Service: constant.ServiceBooker,
		mount: func(router chi.Router) {
			domainHandlers.Booking.Router(router)
		},
	}
}

func NewFinder(domainHandlers FinderHandlers) Router {
	return Router{
		Service: constant.ServiceFinder,
		mount: func(router chi.Router) {
			domainHandlers.Location.Router(router)
		},
	}
}
