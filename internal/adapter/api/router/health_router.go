package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/handler"
)

func SetupHealthRouter(e *echo.Echo) {
	healthHandler := handler.GetHealthHandler()
	e.GET("/health", healthHandler.CheckHealth)
	e.GET("/health/database", healthHandler.CheckDatabaseHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
