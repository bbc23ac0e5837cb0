package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/middleware"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, limiter)
	SetupReportRouter(e, authMiddleware)
	SetupExportRouter(e, authMiddleware)
	SetupNoticeRouter(e)
	SetupHealthRouter(e)
}
