// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"kampina/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", echo.Map{"Title": "Home"})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
