package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// requestIDLength nanoid 기본 길이
const requestIDLength = 21

// RequestID X-Request-ID 가 없으면 nanoid 로 만들어 붙입니다
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: func() string {
			id, err := gonanoid.New(requestIDLength)
			if err != nil {
				return echomw.DefaultRequestIDConfig.Generator()
			}
			return id
		},
	})
}
