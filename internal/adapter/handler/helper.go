package handler

import (
	stdErrors "errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-minutes-team/meeting-minutes/errors"
)

// errs is the JSON error response shape
type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// userMessage extracts the user-facing message from an error.
func userMessage(err error) string {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}

// logError writes the structured error log entry for a failed request.
func logError(logger *zap.Logger, c echo.Context, err error) {
	if logger == nil {
		return
	}

	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	}

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		fields = append(fields, zap.String("app_code", appErr.Code.String()))
	}

	logger.Error("http.response.error", fields...)
}

// RedirectWithError converts any pipeline error into a redirect back to the
// form carrying the user-visible message. All error kinds land here; none
// crash the process and none trigger an internal retry.
func RedirectWithError(logger *zap.Logger, c echo.Context, err error) error {
	logError(logger, c, err)
	return c.Redirect(http.StatusSeeOther, "/?error="+url.QueryEscape(userMessage(err)))
}

// HandleError writes a JSON error response; used by the non-form routes.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	logError(logger, c, err)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		info := ""
		if appErr.Raw != nil {
			info = appErr.Raw.Error()
		}
		return c.JSON(appErr.HTTPCode, errs{
			Code:    appErr.Code,
			Message: appErr.Message,
			Info:    info,
		})
	}

	return c.JSON(http.StatusInternalServerError, errs{
		Code:    errors.ErrorCode_INTERNAL,
		Message: "Internal server error",
		Info:    err.Error(),
	})
}
