// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/api/middleware"
	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/platform/logger"
	"github.com/mealworks/savor-api/internal/service/auth"
	"github.com/mealworks/savor-api/internal/store"
)

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore store.UserStore
	uploader  *Uploader
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	jwt       auth.JWTService
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	uploader *Uploader,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwt auth.JWTService,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		userStore: userStore,
		uploader:  uploader,
		hasher:    hasher,
		verifier:  verifier,
		jwt:       jwt,
		validator: validator.New(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// Create handles POST /api/user/v1/createUser.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req CreateUserRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Uniqueness pre-checks on both unique keys, before any upload or
	// write. The store's unique indexes remain the authority when two
	// identical creates race.
	if _, err := h.userStore.GetByEmail(r.Context(), req.Email); err == nil {
		RespondWithError(w, r, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}
	if _, err := h.userStore.GetByName(r.Context(), req.Name); err == nil {
		RespondWithError(w, r, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	user.Bio = req.Bio

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	// Upload precedes persistence so a failed upload never leaves a
	// half-written record.
	if file != nil {
		ref, err := h.uploader.Store(r.Context(), file)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to upload image")
			return
		}
		user.Image = ref
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			RespondWithError(w, r, http.StatusBadRequest, "User already exists")
			return
		}
		log.Error("failed to create user", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, "User created successfully", user)
}

// Login handles POST /api/user/v1/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Unknown email and wrong password produce identical responses so
	// the two cases cannot be told apart.
	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Error("failed to look up user for login", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwt.GenerateToken(r.Context(), user.ID.Hex(), user.Email)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID.Hex())
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "User logged in successfully", LoginResponse{
		Token: token,
		User:  user,
	})
}

// Me handles GET /api/user/v1/me. It requires the auth middleware.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok || userID == "" {
		log.Warn("user ID not found in request context")
		RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve user")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "User retrieved successfully", user)
}

// List handles GET /api/user/v1/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve users")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "Users retrieved successfully", users)
}

// Update handles PUT /api/user/v1/users/{userId}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := pathObjectID(r, "userId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	file, err := h.uploader.ParseRequest(r)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to read uploaded file")
		return
	}

	var req UpdateUserRequest
	if err := DecodeForm(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	// Partial update: only supplied fields change.
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Password != nil {
		hashed, err := h.hasher.Hash(*req.Password)
		if err != nil {
			log.Error("failed to hash password", "error", err)
			RespondWithError(w, r, http.StatusInternalServerError, "Failed to update user")
			return
		}
		user.HashedPassword = hashed
	}

	if file != nil {
		// Best-effort removal of the previous asset; a provider failure
		// is logged inside Discard and does not abort the update.
		h.uploader.Discard(r.Context(), user.Image)

		ref, err := h.uploader.Store(r.Context(), file)
		if err != nil {
			HandleAPIError(w, r, err, "Failed to upload image")
			return
		}
		user.Image = ref
	}

	user.Touch()

	if err := h.userStore.Update(r.Context(), user); err != nil {
		if store.IsDuplicateError(err) {
			RespondWithError(w, r, http.StatusBadRequest, "User already exists")
			return
		}
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "User updated successfully", user)
}

// Delete handles DELETE /api/user/v1/users/{userId}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathObjectID(r, "userId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	h.uploader.Discard(r.Context(), user.Image)

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, "User deleted successfully", map[string]string{
		"userId": id.Hex(),
	})
}
