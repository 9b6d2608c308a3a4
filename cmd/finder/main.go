package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/metrics"

	_ "hotel/docs/finder"
)

// @title Location Finder API
// @version 1.0
// @description Find the closest named location on a 100 x 100 grid.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(constant.ServiceFinder)

	logger.SetLogLevel(cfg)

	metrics.Register()

	http := di.InitializeFinder()
	http.Serve()
}
