package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/delivery/http/response"
	"kampina/internal/domain/entity"
	domainerrors "kampina/internal/domain/errors"
	"kampina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	registerPath = "/register"
	loginPath    = "/login"
)

// UserHandlerParams holds the dependencies of UserHandler.
type UserHandlerParams struct {
	fx.In

	Users    usecase.UserUsecase
	Sessions usecase.SessionUsecase
	Logger   *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	users    usecase.UserUsecase
	sessions usecase.SessionUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		users:    params.Users,
		sessions: params.Sessions,
		logger:   params.Logger,
	}
}

// RegisterForm renders the sign-up page.
func (h *UserHandler) RegisterForm(c echo.Context) error {
	return c.Render(http.StatusOK, "users/register", echo.Map{"Title": "Register"})
}

// Register creates the account and signs the new user in.
func (h *UserHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return response.FlashError(c, domainerrors.ErrValidationFailed.Message(), registerPath)
	}
	if err := c.Validate(&form); err != nil {
		return response.FlashError(c, userMessage(err, domainerrors.ErrValidationFailed.Message()), registerPath)
	}

	ctx := c.Request().Context()
	user, err := h.users.Register(ctx, &usecase.RegisterUserInput{
		Email:    form.Email,
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return response.FlashError(c, appErr.Message(), registerPath)
		}

		return errors.WithStack(err)
	}

	session, err := h.rotate(c)
	if err != nil {
		return err
	}
	session.Login(user.ID)

	return response.FlashSuccess(c, "Welcome to Kampina!", campgroundsPath)
}

// LoginForm renders the sign-in page.
func (h *UserHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "users/login", echo.Map{"Title": "Login"})
}

// Login verifies the credentials and resumes where the user was headed.
func (h *UserHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return response.FlashError(c, domainerrors.ErrInvalidCredentials.Message(), loginPath)
	}
	if err := c.Validate(&form); err != nil {
		return response.FlashError(c, userMessage(err, domainerrors.ErrInvalidCredentials.Message()), loginPath)
	}

	user, err := h.users.Login(c.Request().Context(), &usecase.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if errors.Is(err, domainerrors.ErrInvalidCredentials) {
		return response.FlashError(c, domainerrors.ErrInvalidCredentials.Message(), loginPath)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	session, err := h.rotate(c)
	if err != nil {
		return err
	}
	session.Login(user.ID)
	deliverycontext.SetCurrentUser(c, user)

	return response.FlashSuccess(c, "Welcome back!", session.PopReturnTo(campgroundsPath))
}

// Logout detaches the user from the session.
func (h *UserHandler) Logout(c echo.Context) error {
	session, err := h.rotate(c)
	if err != nil {
		return err
	}
	session.Logout()
	deliverycontext.SetCurrentUser(c, nil)

	return response.FlashSuccess(c, "Goodbye!", campgroundsPath)
}

// rotate issues a fresh session identifier on every privilege change.
func (h *UserHandler) rotate(c echo.Context) (*entity.Session, error) {
	session := deliverycontext.GetSession(c)
	if session == nil {
		return nil, errors.New("session middleware not installed")
	}

	rotated, err := h.sessions.Rotate(c.Request().Context(), session)
	if err != nil {
		return nil, errors.Wrap(err, "rotate session")
	}
	deliverycontext.SetSession(c, rotated)

	return rotated, nil
}
