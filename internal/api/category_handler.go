package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/platform/logger"
	"github.com/mealworks/savor-api/internal/store"
)

// CategoryHandler handles category-related API requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	uploader      *Uploader
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(
	categoryStore store.CategoryStore,
	uploader *Uploader,
	log *slog.Logger,
) *CategoryHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		categoryStore: categoryStore,
		uploader:      uploader,
		validator:     validator.New(),
		logger:        log.With(slog.String("component", "category_handler")),
	}
}

// Create handles POST /api/category/v1/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req CreateCategoryRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := domain.NewCategory(req.Name, req.Description)
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
		category.Image = ref
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, "Category created successfully", category)
}

// List handles GET /api/category/v1/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve categories")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Categories retrieved successfully", categories)
}

// Get handles GET /api/category/v1/categories/{categoryId}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "categoryId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Category retrieved successfully", category)
}

// Update handles PUT /api/category/v1/categories/{categoryId}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathObjectID(r, "categoryId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req UpdateCategoryRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if file != nil {
		h.uploader.Discard(r.Context(), category.Image)

		ref, err := h.uploader.Store(r.Context(), file)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to upload image")
			return
		}
		category.Image = ref
	}

	category.Touch()

	if err := category.Validate(); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	if err := h.categoryStore.Update(r.Context(), category); err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}

	log.Debug("category updated", slog.String("category_id", id.Hex()))
	RespondWithJSON(w, r, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/category/v1/categories/{categoryId}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "categoryId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	h.uploader.Discard(r.Context(), category.Image)

	if err := h.categoryStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Category deleted successfully", map[string]string{
		"categoryId": id.Hex(),
	})
}
