package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/handler"
	"github.com/Korea-Traffic-Solution/backend/internal/adapter/api/middleware"
	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/ratelimit"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login, middleware.RateLimit(limiter, "login"))
}
