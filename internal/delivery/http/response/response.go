// Package response holds the reply helpers shared by handlers and middleware.
package response

import (
	"net/http"
	"strings"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Response unified JSON response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CAMPGROUND_NOT_FOUND"
	Details string `json:"details,omitempty"` // Only populated in debug mode
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Redirect issues the 302 used after every form submission.
func Redirect(c echo.Context, url string) error {
	return c.Redirect(http.StatusFound, url)
}

// FlashRedirect queues a flash message on the request session and redirects.
func FlashRedirect(c echo.Context, kind, message, url string) error {
	Flash(c, kind, message)

	return Redirect(c, url)
}

// Flash queues a message for the next rendered page. It is a no-op without a session.
func Flash(c echo.Context, kind, message string) {
	if session := deliverycontext.GetSession(c); session != nil {
		session.AddFlash(kind, message)
	}
}

// FlashSuccess is shorthand for a success flash followed by a redirect.
func FlashSuccess(c echo.Context, message, url string) error {
	return FlashRedirect(c, entity.FlashSuccess, message, url)
}

// FlashError is shorthand for an error flash followed by a redirect.
func FlashError(c echo.Context, message, url string) error {
	return FlashRedirect(c, entity.FlashError, message, url)
}

// WantsJSON reports whether the client prefers a JSON body over HTML.
func WantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
