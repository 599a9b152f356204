package api

import (
	"github.com/mealworks/savor-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for user registration.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Bio      string `json:"bio"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// UpdateUserRequest defines the partial-update payload for a user.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
}

// CreateCategoryRequest defines the payload for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines the partial-update payload for a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateFoodItemRequest defines the payload for food item creation.
// IsVegetarian is a pointer so that an explicit false satisfies the
// required check while a missing field fails it.
type CreateFoodItemRequest struct {
	Name         string  `json:"name"         validate:"required"`
	Description  string  `json:"description"  validate:"required"`
	Price        float64 `json:"price"        validate:"required,gt=0"`
	Category     string  `json:"category"     validate:"required"`
	Type         string  `json:"type"         validate:"required"`
	Available    *bool   `json:"available"`
	IsVegetarian *bool   `json:"isVegetarian" validate:"required"`
}

// UpdateFoodItemRequest defines the partial-update payload for a food
// item. Boolean fields apply on explicit false as well as true.
type UpdateFoodItemRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"        validate:"omitempty,gt=0"`
	Category     *string  `json:"category"`
	Type         *string  `json:"type"`
	Available    *bool    `json:"available"`
	IsVegetarian *bool    `json:"isVegetarian"`
}

// FoodItemResponse is a food item with its category resolved inline.
type FoodItemResponse struct {
	domain.FoodItem
	Category *domain.Category `json:"category"`
}
