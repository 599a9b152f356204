package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry a hashed
	// password. Returns ErrEmailExists or ErrUserNameExists when the
	// respective unique index rejects the write.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by identifier.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByName retrieves a user by display name.
	// Returns ErrUserNotFound if the user does not exist.
	GetByName(ctx context.Context, name string) (*domain.User, error)

	// List returns all users, unfiltered and unpaginated.
	List(ctx context.Context) ([]domain.User, error)

	// Update replaces the stored user document. The caller provides the
	// complete entity including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by identifier.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
