package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/domain"
)

// CategoryStore defines the interface for category persistence.
type CategoryStore interface {
	// Create saves a new category.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by identifier.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)

	// List returns all categories, unfiltered and unpaginated.
	List(ctx context.Context) ([]domain.Category, error)

	// Update replaces the stored category document.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category by identifier.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
