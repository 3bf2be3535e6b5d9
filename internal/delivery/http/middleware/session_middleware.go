package middleware

import (
	"log/slog"
	"net/http"

	"kampina/config"
	deliverycontext "kampina/internal/delivery/context"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds the dependencies of SessionMiddleware.
type SessionMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Users    usecase.UserUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// SessionMiddleware attaches the cookie session and the authenticated user to each request.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	users      usecase.UserUsecase
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   params.Sessions,
		users:      params.Users,
		cookieName: params.Config.Session.CookieName,
		secure:     params.Config.Session.Secure,
		logger:     params.Logger,
	}
}

// Handle loads the session before the handler runs and persists it right before the
// response header is written, so the cookie always reflects the final session state.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var id string
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			id = cookie.Value
		}

		session, err := m.sessions.Load(ctx, id)
		if err != nil {
			return errors.Wrap(err, "load session")
		}
		deliverycontext.SetSession(c, session)

		if session.IsAuthenticated() {
			user, err := m.users.GetUser(ctx, *session.UserID)
			switch {
			case err == nil:
				deliverycontext.SetCurrentUser(c, user)
			case errors.Is(err, domainerrors.ErrUserNotFound):
				session.Logout()
			default:
				return errors.Wrap(err, "load session user")
			}
		}

		c.Response().Before(func() {
			m.persist(c)
		})

		return next(c)
	}
}

// persist saves the session currently attached to c, which may have been rotated by a handler.
func (m *SessionMiddleware) persist(c echo.Context) {
	session := deliverycontext.GetSession(c)
	if session == nil || !session.Modified() {
		return
	}

	if err := m.sessions.Save(c.Request().Context(), session); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Failed to save session",
			slog.String("error", err.Error()),
		)

		return
	}

	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(m.sessions.MaxAge().Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
