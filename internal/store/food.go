package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/domain"
)

// FoodItemStore defines the interface for food item persistence.
type FoodItemStore interface {
	// Create saves a new food item. Returns ErrFoodItemExists when the
	// (name, category) unique index rejects the write.
	Create(ctx context.Context, item *domain.FoodItem) error

	// GetByID retrieves a food item by identifier.
	// Returns ErrFoodItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error)

	// FindByNameAndCategory looks up a food item by its uniqueness pair.
	// Returns ErrFoodItemNotFound when no such item exists.
	FindByNameAndCategory(
		ctx context.Context,
		name string,
		categoryID primitive.ObjectID,
	) (*domain.FoodItem, error)

	// List returns all food items, unfiltered and unpaginated.
	List(ctx context.Context) ([]domain.FoodItem, error)

	// Update replaces the stored food item document.
	// Returns ErrFoodItemNotFound if the item does not exist, and
	// ErrFoodItemExists if the update would collide on (name, category).
	Update(ctx context.Context, item *domain.FoodItem) error

	// Delete removes a food item by identifier.
	// Returns ErrFoodItemNotFound if the item does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
