package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Korea-Traffic-Solution/backend/internal/infrastructure/ratelimit"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
	"github.com/Korea-Traffic-Solution/backend/pkg/response"
)

const CodeRateLimited = "RATE_LIMITED"

// RateLimit limits action per client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, wait := limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("RATE LIMIT: blocked %s from %s (retry in %v)", action, ip, wait)
				c.Response().Header().Set("Retry-After", formatSeconds(wait.Seconds()))
				return response.Error(c, errors.New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests, nil))
			}

			return next(c)
		}
	}
}

func formatSeconds(s float64) string {
	n := int(math.Ceil(s))
	if n < 1 {
		n = 1
	}
	return strconv.Itoa(n)
}
