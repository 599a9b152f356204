package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/api"
	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/mocks"
)

func newCategoryHandler(
	categories *mocks.MockCategoryStore,
	assets *mocks.MockAssetStore,
) *api.CategoryHandler {
	return api.NewCategoryHandler(categories, testUploader(assets), testLogger())
}

func categoryRouter(handler *api.CategoryHandler) chi.Router {
	r := chi.NewRouter()
	r.Post("/categories", handler.Create)
	r.Get("/categories", handler.List)
	r.Get("/categories/{categoryId}", handler.Get)
	r.Put("/categories/{categoryId}", handler.Update)
	r.Delete("/categories/{categoryId}", handler.Delete)
	return r
}

func TestCategoryHandlerCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name:       "valid category",
			payload:    map[string]interface{}{"name": "Drinks", "description": "Beverages"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "description optional",
			payload:    map[string]interface{}{"name": "Desserts"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			payload:    map[string]interface{}{"description": "Beverages"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := mocks.NewMockCategoryStore()
			handler := newCategoryHandler(categories, mocks.NewMockAssetStore())

			rec := httptest.NewRecorder()
			categoryRouter(handler).ServeHTTP(rec, postJSON(t, "/categories", tt.payload))

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus < 400, env.Success)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Category created successfully", env.Message)
				assert.Len(t, categories.Categories, 1)
			} else {
				assert.Empty(t, categories.Categories)
			}
		})
	}
}

func TestCategoryHandlerGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		categories := mocks.NewMockCategoryStore()
		drinks := seedCategory(t, categories, "Drinks")
		handler := newCategoryHandler(categories, mocks.NewMockAssetStore())

		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/categories/"+drinks.ID.Hex(), nil))

		env := decodeEnvelope(t, rec)
		require.Equal(t, http.StatusOK, rec.Code)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Drinks", data["name"])
	})

	t.Run("unknown id", func(t *testing.T) {
		handler := newCategoryHandler(mocks.NewMockCategoryStore(), mocks.NewMockAssetStore())

		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/categories/"+primitive.NewObjectID().Hex(), nil))

		env := decodeEnvelope(t, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := newCategoryHandler(mocks.NewMockCategoryStore(), mocks.NewMockAssetStore())

		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec,
			httptest.NewRequest(http.MethodGet, "/categories/not-hex", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCategoryHandlerList(t *testing.T) {
	t.Parallel()

	categories := mocks.NewMockCategoryStore()
	seedCategory(t, categories, "Drinks")
	seedCategory(t, categories, "Mains")
	handler := newCategoryHandler(categories, mocks.NewMockAssetStore())

	rec := httptest.NewRecorder()
	categoryRouter(handler).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/categories", nil))

	env := decodeEnvelope(t, rec)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestCategoryHandlerUpdate(t *testing.T) {
	t.Parallel()

	t.Run("partial update", func(t *testing.T) {
		categories := mocks.NewMockCategoryStore()
		drinks := seedCategory(t, categories, "Drinks")
		drinks.Description = "original"
		handler := newCategoryHandler(categories, mocks.NewMockAssetStore())

		body, _ := json.Marshal(map[string]interface{}{"description": "updated"})
		req := httptest.NewRequest(http.MethodPut, "/categories/"+drinks.ID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		updated := categories.Categories[drinks.ID]
		assert.Equal(t, "Drinks", updated.Name)
		assert.Equal(t, "updated", updated.Description)
		assert.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("emptying the name is rejected", func(t *testing.T) {
		categories := mocks.NewMockCategoryStore()
		drinks := seedCategory(t, categories, "Drinks")
		handler := newCategoryHandler(categories, mocks.NewMockAssetStore())

		body, _ := json.Marshal(map[string]interface{}{"name": ""})
		req := httptest.NewRequest(http.MethodPut, "/categories/"+drinks.ID.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		handler := newCategoryHandler(mocks.NewMockCategoryStore(), mocks.NewMockAssetStore())

		body, _ := json.Marshal(map[string]interface{}{"name": "Drinks"})
		req := httptest.NewRequest(http.MethodPut, "/categories/"+primitive.NewObjectID().Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes and acknowledges", func(t *testing.T) {
		categories := mocks.NewMockCategoryStore()
		drinks := seedCategory(t, categories, "Drinks")
		drinks.Image = &domain.AssetRef{URL: "https://assets.test/drinks.png", Key: "drinks.png"}
		assets := mocks.NewMockAssetStore()
		handler := newCategoryHandler(categories, assets)

		req := httptest.NewRequest(http.MethodDelete, "/categories/"+drinks.ID.Hex(), nil)
		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec, req)

		env := decodeEnvelope(t, rec)
		require.Equal(t, http.StatusOK, rec.Code)

		var ack map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &ack))
		assert.Equal(t, map[string]string{"categoryId": drinks.ID.Hex()}, ack)

		assert.Empty(t, categories.Categories)
		assert.Equal(t, []string{"drinks.png"}, assets.Removed)
	})

	t.Run("unknown id", func(t *testing.T) {
		handler := newCategoryHandler(mocks.NewMockCategoryStore(), mocks.NewMockAssetStore())

		req := httptest.NewRequest(http.MethodDelete, "/categories/"+primitive.NewObjectID().Hex(), nil)
		rec := httptest.NewRecorder()
		categoryRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
