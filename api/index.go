package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/metrics"
	"net/http"
	"strings"
	"sync"

	_ "hotel/docs/booker"
	_ "hotel/docs/finder"
)

const bookingsPrefix = "/bookings"

var (
	once   sync.Once
	booker http.Handler
	finder http.Handler
)

// Handler serves both services from a single serverless function, routing by path.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.App.Name)

		logger.SetLogLevel(cfg)

		metrics.Register()

		booker = di.InitializeBooker().Handler()
		finder = di.InitializeFinder().Handler()
	})

	if strings.HasPrefix(r.URL.Path, bookingsPrefix) || strings.HasPrefix(r.URL.Path, constant.PathDocs+"/"+constant.ServiceBooker) {
		booker.ServeHTTP(w, r)

		return
	}

	finder.ServeHTTP(w, r)
}
