package metrics_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"hotel/shared/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T) map[string]bool {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}

	return names
}

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.Register()
		metrics.Register()
	})
}

func TestMetricsAreExposed(t *testing.T) {
	metrics.Register()

	metrics.ObserveHTTPRequest("booker", http.MethodPost, "/bookings/", http.StatusCreated, 5*time.Millisecond)
	metrics.IncBookingCreated()
	metrics.IncClosestLookup("Central Hub Hostel")

	names := gather(t)

	for _, name := range []string{
		"hotel_http_requests_total",
		"hotel_http_request_duration_seconds",
		"hotel_bookings_created_total",
		"hotel_bookings_stored",
		"hotel_closest_location_lookups_total",
	} {
		assert.True(t, names[name], "expected %s to be registered", name)
	}
}

func gaugeValue(t *testing.T, name string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() == name {
			return family.GetMetric()[0].GetGauge().GetValue()
		}
	}

	return 0
}

func TestIncBookingCreated_ConcurrentCreatesAreAllCounted(t *testing.T) {
	metrics.Register()
	metrics.IncBookingCreated()

	before := gaugeValue(t, "hotel_bookings_stored")

	const creators = 50

	var wg sync.WaitGroup
	for range creators {
		wg.Add(1)

		go func() {
			defer wg.Done()
			metrics.IncBookingCreated()
		}()
	}

	wg.Wait()

	assert.Equal(t, before+creators, gaugeValue(t, "hotel_bookings_stored"))
}
