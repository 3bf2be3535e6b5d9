package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"kampina/config"
	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"
	domainerrors "kampina/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const errorTemplate = "error"

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(cfg *config.Config, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

type errorView struct {
	status  int
	code    string
	message string
	details string
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// The error page is rendered as HTML unless the client asked for JSON.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if c.Response().Committed {
		logger.Error("Error after response was committed",
			slog.String("error", err.Error()),
			slog.String("path", c.Request().URL.Path),
		)

		return
	}

	view := m.classify(err)

	if view.status >= http.StatusInternalServerError {
		logger.Error("Unhandled error",
			slog.String("error", fmt.Sprintf("%+v", err)),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	} else {
		logger.Debug("Request failed",
			slog.Int("status", view.status),
			slog.String("error", err.Error()),
		)
	}

	var writeErr error
	switch {
	case c.Request().Method == http.MethodHead:
		writeErr = c.NoContent(view.status)
	case response.WantsJSON(c):
		writeErr = response.Error(c, view.status, view.code, view.message, view.details)
	default:
		writeErr = c.Render(view.status, errorTemplate, echo.Map{
			"Title":   view.message,
			"Status":  view.status,
			"Message": view.message,
			"Details": view.details,
		})
		if writeErr != nil && !c.Response().Committed {
			writeErr = c.String(view.status, view.message)
		}
	}

	if writeErr != nil {
		logger.Error("Failed to write error response", slog.String("error", writeErr.Error()))
	}
}

func (m *ErrorMiddleware) classify(err error) errorView {
	view := errorView{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.FallbackMessage,
	}

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		view.status = appErr.HTTPCode()
		view.code = appErr.ErrorCode()
		if msg := appErr.Message(); msg != "" {
			view.message = msg
		}
	case errors.As(err, &httpErr):
		view.status = httpErr.Code
		view.code = "HTTP_ERROR"
		view.message = httpErrorMessage(httpErr)
	}

	if m.debug {
		view.details = fmt.Sprintf("%+v", err)
	}

	return view
}

func httpErrorMessage(err *echo.HTTPError) string {
	if err.Code == http.StatusNotFound {
		return domainerrors.ErrNotFound.Message()
	}
	if msg, ok := err.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(err.Code)
}
