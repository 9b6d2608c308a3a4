package http

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"hotel/transport/http/router"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Otel       otel.Otel

	state   atomic.Int32
	once    sync.Once
	handler http.Handler
	server  *http.Server
	stopped chan struct{}
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, ot otel.Otel) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: appMiddleware,
		Otel:       ot,
		stopped:    make(chan struct{}),
	}
}

func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              h.Config.Addr(),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().Str("service", h.Router.Service).Str("addr", h.server.Addr).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.stopped
}

// Handler returns the fully routed handler without listening, for tests and embedding.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.handler
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	r := chi.NewRouter()

	r.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		h.Middleware.Logger,
		h.Middleware.Metrics(h.Router.Service),
		h.serverState,
		h.Middleware.CORS(),
		h.Middleware.Tracing,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(constant.ResponseErrorNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.MethodNotAllowed(constant.ResponseErrorMethodNotAllowed))
	})

	r.Get(constant.PathHealth, h.healthCheck)
	r.Handle(constant.PathMetrics, promhttp.Handler())
	r.Get(constant.PathDocs+"/*", httpSwagger.Handler(httpSwagger.InstanceName(h.Router.Service)))

	r.Group(func(routerGroup chi.Router) {
		routerGroup.Use(h.Middleware.RateLimit())
		h.Router.SetupRoutes(routerGroup)
	})

	h.handler = r
}

// serverState rejects every request once shutdown has started.
func (h *HTTP) serverState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// healthCheck godoc
// @Summary Health check
// @Description Reports whether the service is accepting requests.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, constant.ResponseMessageOK)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.stopped)

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.setState(ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain in-flight requests")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
