package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"kampina/config"
	deliverycontext "kampina/internal/delivery/context"
	"kampina/internal/domain/entity"
	"kampina/internal/domain/repository"
	"kampina/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionIDBytes = 32

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	store      repository.SessionStore
	maxAge     time.Duration
	touchAfter time.Duration
	now        func() time.Time
	newID      func() (string, error)
	logger     *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store  repository.SessionStore
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:      params.Store,
		maxAge:     params.Config.Session.MaxAge,
		touchAfter: params.Config.Session.TouchAfter,
		now:        time.Now,
		newID:      newSessionID,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) MaxAge() time.Duration {
	return srv.maxAge
}

// Load restores the session or starts a new one.
func (srv *sessionService) Load(ctx context.Context, id string) (*entity.Session, error) {
	now := srv.now()

	if id != "" {
		session, err := srv.store.Get(ctx, id)
		switch {
		case err == nil && !session.Expired(now):
			session.Touch(now, srv.maxAge, srv.touchAfter)

			return session, nil
		case err == nil, errors.Is(err, repository.ErrSessionNotFound):
			srv.log(ctx).Debug("Session not found or expired, starting a new one")
		default:
			return nil, errors.Wrap(err, "failed to load session")
		}
	}

	newID, err := srv.newID()
	if err != nil {
		return nil, err
	}

	return entity.NewSession(newID, now, srv.maxAge), nil
}

// Save writes the session only when something changed.
func (srv *sessionService) Save(ctx context.Context, session *entity.Session) error {
	if session == nil || !session.Modified() {
		return nil
	}

	if err := srv.store.Save(ctx, session); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	session.MarkSaved()

	return nil
}

// Rotate issues a new identifier for the same state. The old identifier stops working.
func (srv *sessionService) Rotate(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	newID, err := srv.newID()
	if err != nil {
		return nil, err
	}

	now := srv.now()
	rotated := entity.NewSession(newID, now, srv.maxAge)
	if session.UserID != nil {
		rotated.Login(*session.UserID)
	}
	for kind, msgs := range session.Flashes {
		for _, msg := range msgs {
			rotated.AddFlash(kind, msg)
		}
	}
	if session.ReturnTo != "" {
		rotated.SetReturnTo(session.ReturnTo)
	}

	if !session.IsNew() {
		if err := srv.store.Delete(ctx, session.ID); err != nil {
			return nil, errors.Wrap(err, "failed to delete rotated session")
		}
	}

	srv.log(ctx).Debug("Session rotated")

	return rotated, nil
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
