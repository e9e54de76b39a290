package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitConfig 인증 경로 요청 제한
type RateLimitConfig struct {
	Rate      float64
	Burst     int
	ExpiresIn time.Duration
}

// DefaultAuthRateLimit IP 당 초당 5회, 버스트 10
var DefaultAuthRateLimit = RateLimitConfig{Rate: 5, Burst: 10, ExpiresIn: time.Hour}

// AuthRateLimiter 로그인/가입 경로용 IP 기준 요청 제한
func AuthRateLimiter(cfg RateLimitConfig) echo.MiddlewareFunc {
	tooMany := func(c echo.Context) error {
		return c.JSON(http.StatusTooManyRequests, map[string]string{
			"error": "Too many requests. Please try again later.",
		})
	}

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(
			echomw.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(cfg.Rate),
				Burst:     cfg.Burst,
				ExpiresIn: cfg.ExpiresIn,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return tooMany(c)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return tooMany(c)
		},
	})
}
