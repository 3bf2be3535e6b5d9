// Package context carries request-scoped values between middleware, handlers and services.
package context

import (
	"context"
	"log/slog"

	"kampina/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySession holds the *entity.Session of the request.
	KeySession ContextKey = "session"

	// KeyCurrentUser holds the authenticated *entity.User.
	KeyCurrentUser ContextKey = "current_user"

	// KeyCampground holds the campground loaded by the ownership gate.
	KeyCampground ContextKey = "campground"

	// KeyReview holds the review loaded by the ownership gate.
	KeyReview ContextKey = "review"
)

// GetRequestID returns the request ID stored by the request ID middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetSession returns the session attached by the session middleware, or nil.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(string(KeySession)).(*entity.Session)

	return session
}

// SetSession attaches or replaces the request session.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetCurrentUser returns the authenticated user, or nil for anonymous requests.
func GetCurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(string(KeyCurrentUser)).(*entity.User)

	return user
}

// SetCurrentUser attaches the authenticated user.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}

// GetCampground returns the campground stashed by the ownership gate.
func GetCampground(c echo.Context) *entity.Campground {
	campground, _ := c.Get(string(KeyCampground)).(*entity.Campground)

	return campground
}

// SetCampground stashes a loaded campground.
func SetCampground(c echo.Context, campground *entity.Campground) {
	c.Set(string(KeyCampground), campground)
}

// GetReview returns the review stashed by the ownership gate.
func GetReview(c echo.Context) *entity.Review {
	review, _ := c.Get(string(KeyReview)).(*entity.Review)

	return review
}

// SetReview stashes a loaded review.
func SetReview(c echo.Context, review *entity.Review) {
	c.Set(string(KeyReview), review)
}
