package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyCategoryName is returned when a category is created without a name.
var ErrEmptyCategoryName = errors.New("category name cannot be empty")

// Category groups food items on the menu. A category must exist before
// any food item may reference it.
type Category struct {
	ID          primitive.ObjectID `json:"id"                    bson:"_id,omitempty"`
	Name        string             `json:"name"                  bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Image       *AssetRef          `json:"image,omitempty"       bson:"image,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"             bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty"   bson:"updatedAt,omitempty"`
}

// NewCategory creates a Category with the given name and description.
func NewCategory(name, description string) (*Category, error) {
	category := &Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Touch stamps the update timestamp.
func (c *Category) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Validate checks that the Category carries valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	if !c.Image.Valid() {
		return NewValidationError("image", "must carry both URL and key", ErrValidation)
	}

	return nil
}
