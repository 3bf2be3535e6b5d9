package middleware

import (
	"net/http"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

const (
	campgroundsPath = "/campgrounds"
	loginPath       = "/login"
)

// RequireLogin redirects anonymous visitors to the login page and remembers where they were headed.
// Only safe requests are resumed; anything else resumes at the campground list.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetCurrentUser(c) != nil {
			return next(c)
		}

		if session := deliverycontext.GetSession(c); session != nil {
			returnTo := campgroundsPath
			if m := c.Request().Method; m == http.MethodGet || m == http.MethodHead {
				returnTo = c.Request().RequestURI
			}
			session.SetReturnTo(returnTo)
		}

		return response.FlashError(c, "You must be signed in first!", loginPath)
	}
}
