package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/metrics"

	_ "hotel/docs/booker"
)

// @title Booking Store API
// @version 1.0
// @description Create and list hotel bookings held in memory.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(constant.ServiceBooker)

	logger.SetLogLevel(cfg)

	metrics.Register()

	http := di.InitializeBooker()
	http.Serve()
}
