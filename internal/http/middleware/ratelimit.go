package middleware

import (
	"net/http"

	echo "github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sleekhr/employee-directory/internal/logger"
	"github.com/sleekhr/employee-directory/internal/metrics"
	"github.com/sleekhr/employee-directory/internal/ratelimit"
)

// RateLimitMiddleware gates a route behind the limiter, keyed by
// client address, organization id, and the route's logical endpoint name.
// It expects org_id in echo.Context (set by OrgMiddleware).
func RateLimitMiddleware(limiter ratelimit.Limiter, endpoint string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			org, ok := OrgFromCtx(c)
			if !ok || limiter == nil {
				return next(c)
			}

			key := c.RealIP() + ":" + org + ":" + endpoint

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				// limiter backend unavailable: allow rather than block traffic
				if logger.Log != nil {
					logger.Log.Warn("rate limiter unavailable", zap.String("endpoint", endpoint), zap.Error(err))
				}
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.WithLabelValues(endpoint).Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
