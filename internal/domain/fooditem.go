package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common food item validation errors
var (
	ErrEmptyFoodName        = errors.New("food item name cannot be empty")
	ErrEmptyFoodDescription = errors.New("food item description cannot be empty")
	ErrInvalidFoodPrice     = errors.New("food item price must be greater than zero")
	ErrEmptyFoodCategory    = errors.New("food item category cannot be empty")
	ErrEmptyFoodType        = errors.New("food item type cannot be empty")
)

// FoodItem is a single orderable dish or drink. Every item belongs to
// exactly one Category, and no two items may share the same name within
// a category. IsVegetarian is a required flag where false is a valid
// value, so presence is tracked separately from the value itself.
type FoodItem struct {
	ID           primitive.ObjectID `json:"id"                  bson:"_id,omitempty"`
	Name         string             `json:"name"                bson:"name"`
	Description  string             `json:"description"         bson:"description"`
	Price        float64            `json:"price"               bson:"price"`
	CategoryID   primitive.ObjectID `json:"category"            bson:"category"`
	Type         string             `json:"type"                bson:"type"`
	Available    bool               `json:"available"           bson:"available"`
	IsVegetarian bool               `json:"isVegetarian"        bson:"isVegetarian"`
	Image        *AssetRef          `json:"image,omitempty"     bson:"image,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"           bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// NewFoodItem creates a FoodItem. Availability defaults to true when the
// caller does not supply it; isVegetarian must always be supplied, which
// is why it arrives here as a plain bool after the request layer has
// verified presence.
func NewFoodItem(
	name, description string,
	price float64,
	categoryID primitive.ObjectID,
	itemType string,
	available *bool,
	isVegetarian bool,
) (*FoodItem, error) {
	item := &FoodItem{
		Name:         name,
		Description:  description,
		Price:        price,
		CategoryID:   categoryID,
		Type:         itemType,
		Available:    true,
		IsVegetarian: isVegetarian,
		CreatedAt:    time.Now().UTC(),
	}
	if available != nil {
		item.Available = *available
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Touch stamps the update timestamp.
func (f *FoodItem) Touch() {
	f.UpdatedAt = time.Now().UTC()
}

// Validate checks that the FoodItem carries valid data.
func (f *FoodItem) Validate() error {
	if f.Name == "" {
		return ErrEmptyFoodName
	}

	if f.Description == "" {
		return ErrEmptyFoodDescription
	}

	if f.Price <= 0 {
		return ErrInvalidFoodPrice
	}

	if f.CategoryID.IsZero() {
		return ErrEmptyFoodCategory
	}

	if f.Type == "" {
		return ErrEmptyFoodType
	}

	if !f.Image.Valid() {
		return NewValidationError("image", "must carry both URL and key", ErrValidation)
	}

	return nil
}
