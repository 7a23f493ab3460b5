package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/johnquangdev/review-analyzer/pkg/reqcontext"
)

// RequestID reuses an inbound X-Request-ID or generates a UUID, echoes it on
// the response and stores it in the request context for loggers downstream
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: reqcontext.HeaderRequestID,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(reqcontext.WithRequestID(req.Context(), id)))
		},
	})
}
