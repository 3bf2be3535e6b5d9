package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Catch runs h and forwards any failure, panics included, to the centralized error handler
// with a stack trace attached.
func Catch(h echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if r == http.ErrAbortHandler { //nolint:errorlint
					panic(r)
				}
				if e, ok := r.(error); ok {
					err = errors.WithStack(e)

					return
				}
				err = errors.New(fmt.Sprint(r))
			}
		}()

		if err = h(c); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}
}
