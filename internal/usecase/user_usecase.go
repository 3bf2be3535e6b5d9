// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kampina/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates the user. A taken email or username yields ErrUserAlreadyExists.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Login verifies the credentials. Any mismatch yields ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// GetUser loads the principal attached to a session.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
