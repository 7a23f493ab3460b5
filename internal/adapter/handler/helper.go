package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/review-analyzer/errors"
	"github.com/johnquangdev/review-analyzer/internal/adapter/dto/review"
	usecaseErrors "github.com/johnquangdev/review-analyzer/internal/usecase/errors"
	"github.com/johnquangdev/review-analyzer/pkg/reqcontext"
)

// getRequestID reads the request ID set by the request ID middleware,
// falling back to the inbound header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := reqcontext.GetRequestID(c.Request().Context()); id != "" {
		return id
	}
	return c.Request().Header.Get(reqcontext.HeaderRequestID)
}

// parseID reads a positive integer path parameter
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidArgument(name + " must be a positive integer")
	}
	return uint(id), nil
}

// HandleSuccess writes data as-is with the given status. The web client reads
// the bare object, so there is no envelope.
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging using provided logger.
// Every body carries an "error" string, which the web client displays.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)
	appErr := toAppError(err)

	if logger != nil {
		log := logger.Warn
		if appErr.HTTPCode >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	body := review.ErrorResponse{
		Error:   appErr.Message,
		Code:    int32(appErr.Code),
		Details: appErr.Details,
	}
	if appErr.Raw != nil {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps usecase errors onto AppError. Unknown errors are internal.
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrEmptyReviewText):
		return errors.ErrReviewTextEmpty()
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	case stdErrors.Is(err, usecaseErrors.ErrReviewNotFound):
		return errors.ErrNotFound("review")
	default:
		return errors.ErrInternal(err)
	}
}
