package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/handler"
	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/middleware"
)

func SetupReportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reportHandler := handler.GetReportHandler()

	reports := e.Group("/api/reports")
	reports.Use(authMiddleware.Authenticate)

	reports.GET("", reportHandler.ListReports)
	reports.POST("", reportHandler.CreateReport)
	reports.GET("/statistics", reportHandler.GetStatistics)
	reports.GET("/statistics/local", reportHandler.GetLocalStatistics)
	reports.GET("/monthly", reportHandler.GetMonthlyReports)
	reports.GET("/local", reportHandler.ListLocalReports)
	reports.GET("/:id", reportHandler.GetReport)
	reports.PATCH("/:id", reportHandler.ProcessReport)
}

func SetupExportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	exportHandler := handler.GetExportHandler()

	admin := e.Group("/api/admin")
	admin.Use(authMiddleware.Authenticate)

	admin.GET("/reports/excel/download", exportHandler.DownloadApprovedReports)
}
