package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/review-analyzer/errors"
	"github.com/johnquangdev/review-analyzer/pkg/jwt"
)

// AdminSubjectKey is the echo context key holding the token subject
const AdminSubjectKey = "admin_subject"

// TokenValidator is satisfied by *jwt.Manager
type TokenValidator interface {
	ValidateAdminToken(token string) (*jwt.Claims, error)
}

// EchoAdminAuth returns an Echo middleware that requires a valid admin bearer
// token and sets the token subject into the context under AdminSubjectKey
func EchoAdminAuth(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return respondError(c, errors.ErrUnauthenticated())
			}

			claims, err := validator.ValidateAdminToken(token)
			if err != nil {
				appErr := errors.ErrInvalidToken()
				appErr.Raw = err
				return respondError(c, appErr)
			}

			c.Set(AdminSubjectKey, claims.Subject)
			return next(c)
		}
	}
}

// Helper functions

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// respondError writes the same body shape as handler.HandleError
func respondError(c echo.Context, appErr errors.AppError) error {
	body := map[string]interface{}{
		"error": appErr.Message,
		"code":  int32(appErr.Code),
	}
	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusUnauthorized
	}
	return c.JSON(status, body)
}
