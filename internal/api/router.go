package api

import (
	_ "cablestats/docs"
	"cablestats/internal/api/handler"
	"cablestats/pkg/router"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

func RegisterRoutes(r *router.Router, logger *zap.Logger) {
	handler.SetLogger(logger)

	r.GET("/api/v1/runs", handler.ListRuns)
	r.GET("/api/v1/stats/latest", handler.GetLatestStats)
	r.GET("/api/v1/runs/*", handler.GetRun)
	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
