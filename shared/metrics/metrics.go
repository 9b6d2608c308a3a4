package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotel"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by service, method, route and status.",
		},
		[]string{"service", "method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by service, method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Count of bookings stored.",
		},
	)

	bookingsStored = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bookings_stored",
			Help:      "Number of bookings currently held in memory.",
		},
	)

	closestLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "closest_location_lookups_total",
			Help:      "Count of closest-location lookups by winning location.",
		},
		[]string{"location"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, bookingsCreated, bookingsStored, closestLookups)
	})
}

func ObserveHTTPRequest(service, method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(service, method, route).Observe(elapsed.Seconds())
}

func IncBookingCreated() {
	bookingsCreated.Inc()
	bookingsStored.Inc()
}

func IncClosestLookup(location string) {
	closestLookups.WithLabelValues(location).Inc()
}
