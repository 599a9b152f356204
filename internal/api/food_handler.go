package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/platform/logger"
	"github.com/mealworks/savor-api/internal/store"
)

// FoodHandler handles food item API requests.
type FoodHandler struct {
	foodStore     store.FoodItemStore
	categoryStore store.CategoryStore
	uploader      *Uploader
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewFoodHandler creates a new FoodHandler with the given dependencies.
func NewFoodHandler(
	foodStore store.FoodItemStore,
	categoryStore store.CategoryStore,
	uploader *Uploader,
	log *slog.Logger,
) *FoodHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for FoodHandler")
	}

	return &FoodHandler{
		foodStore:     foodStore,
		categoryStore: categoryStore,
		uploader:      uploader,
		validator:     validator.New(),
		logger:        log.With(slog.String("component", "food_handler")),
	}
}

// Create handles POST /api/food/v1/foodItems.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req CreateFoodItemRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// The validator checks IsVegetarian for presence (non-nil), not for
	// truthiness, so an explicit false passes.
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid category: has invalid format")
		return
	}

	// Referential check precedes every other side effect.
	category, err := h.categoryStore.GetByID(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create food item")
		return
	}

	// Uniqueness pre-check on (name, category); the store's unique index
	// settles races between concurrent creates.
	if _, err := h.foodStore.FindByNameAndCategory(r.Context(), req.Name, categoryID); err == nil {
		RespondWithError(w, r, http.StatusBadRequest,
			"Food item with this name already exists in this category")
		return
	} else if !errors.Is(err, store.ErrFoodItemNotFound) {
		HandleAPIError(w, r, err, "Failed to create food item")
		return
	}

	item, err := domain.NewFoodItem(
		req.Name,
		req.Description,
		req.Price,
		categoryID,
		req.Type,
		req.Available,
		*req.IsVegetarian,
	)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if file != nil {
		ref, err := h.uploader.Store(r.Context(), file)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to upload image")
			return
		}
		item.Image = ref
	}

	if err := h.foodStore.Create(r.Context(), item); err != nil {
		if store.IsDuplicateError(err) {
			RespondWithError(w, r, http.StatusBadRequest,
				"Food item with this name already exists in this category")
			return
		}
		log.Error("failed to create food item", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create food item")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, "Food item created successfully", FoodItemResponse{
		FoodItem: *item,
		Category: category,
	})
}

// List handles GET /api/food/v1/foodItems. Each item's category is
// resolved inline.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.foodStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve food items")
		return
	}

	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve food items")
		return
	}
	byID := make(map[primitive.ObjectID]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	responses := make([]FoodItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, FoodItemResponse{
			FoodItem: item,
			Category: byID[item.CategoryID],
		})
	}

	RespondWithJSON(w, r, http.StatusOK, "Food items retrieved successfully", responses)
}

// Get handles GET /api/food/v1/foodItems/{foodId}.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "foodId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.foodStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve food item")
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), item.CategoryID)
	if err != nil && !store.IsNotFoundError(err) {
		HandleAPIError(w, r, err, "Failed to retrieve food item")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Food item retrieved successfully", FoodItemResponse{
		FoodItem: *item,
		Category: category,
	})
}

// Update handles PUT /api/food/v1/foodItems/{foodId}.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "foodId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req UpdateFoodItemRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	item, err := h.foodStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update food item")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			RespondWithError(w, r, http.StatusBadRequest, "Invalid category: has invalid format")
			return
		}
		if _, err := h.categoryStore.GetByID(r.Context(), categoryID); err != nil {
			HandleAPIError(w, r, err, "Failed to update food item")
			return
		}
		item.CategoryID = categoryID
	}
	// Boolean flags apply on explicit false as well as true.
	if req.Available != nil {
		item.Available = *req.Available
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}

	if file != nil {
		h.uploader.Discard(r.Context(), item.Image)

		ref, err := h.uploader.Store(r.Context(), file)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to upload image")
			return
		}
		item.Image = ref
	}

	item.Touch()

	if err := h.foodStore.Update(r.Context(), item); err != nil {
		if store.IsDuplicateError(err) {
			RespondWithError(w, r, http.StatusBadRequest,
				"Food item with this name already exists in this category")
			return
		}
		HandleAPIError(w, r, err, "Failed to update food item")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Food item updated successfully", item)
}

// Delete handles DELETE /api/food/v1/foodItems/{foodId}.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "foodId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.foodStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete food item")
		return
	}

	h.uploader.Discard(r.Context(), item.Image)

	if err := h.foodStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete food item")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Food item deleted successfully", map[string]string{
		"foodId": id.Hex(),
	})
}
