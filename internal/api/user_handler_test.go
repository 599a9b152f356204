package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/api"
	"github.com/mealworks/savor-api/internal/config"
	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/mocks"
)

// envelope mirrors the wire format for assertions without reusing the
// production type.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUploader(assets *mocks.MockAssetStore) *api.Uploader {
	return api.NewUploader(assets, config.UploadConfig{
		MaxBytes:  50 * 1024 * 1024,
		FileTypes: []string{"images"},
	}, testLogger())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func postJSON(t *testing.T, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func newUserHandler(
	users *mocks.MockUserStore,
	assets *mocks.MockAssetStore,
	verifierOK bool,
) *api.UserHandler {
	return api.NewUserHandler(
		users,
		testUploader(assets),
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: verifierOK},
		&mocks.MockJWTService{Token: "test-token"},
		testLogger(),
	)
}

func TestUserHandlerCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		seed        func(store *mocks.MockUserStore)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":     "alice",
				"email":    "alice@example.com",
				"password": "s3cret-password",
			},
			wantStatus:  http.StatusCreated,
			wantMessage: "User created successfully",
		},
		{
			name: "missing email",
			payload: map[string]interface{}{
				"name":     "alice",
				"password": "s3cret-password",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"name":  "alice",
				"email": "alice@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "malformed email",
			payload: map[string]interface{}{
				"name":     "alice",
				"email":    "not-an-email",
				"password": "s3cret-password",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			payload: map[string]interface{}{
				"name":     "alice",
				"email":    "other@example.com",
				"password": "s3cret-password",
			},
			seed: func(s *mocks.MockUserStore) {
				s.Users["alice@example.com"] = &domain.User{
					ID:    primitive.NewObjectID(),
					Name:  "alice",
					Email: "alice@example.com",
				}
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
		},
		{
			name: "duplicate email",
			payload: map[string]interface{}{
				"name":     "someone else",
				"email":    "alice@example.com",
				"password": "s3cret-password",
			},
			seed: func(s *mocks.MockUserStore) {
				s.Users["alice@example.com"] = &domain.User{
					ID:    primitive.NewObjectID(),
					Name:  "alice",
					Email: "alice@example.com",
				}
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := mocks.NewMockUserStore()
			if tt.seed != nil {
				tt.seed(userStore)
			}
			handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

			rec := httptest.NewRecorder()
			handler.Create(rec, postJSON(t, "/api/user/v1/createUser", tt.payload))

			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantStatus < 400, env.Success)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, env.Message)
			}
		})
	}
}

// Neither the plaintext password nor its hash may appear in any response
// body.
func TestUserHandlerCreateNeverLeaksPassword(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

	rec := httptest.NewRecorder()
	handler.Create(rec, postJSON(t, "/api/user/v1/createUser", map[string]interface{}{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "plaintext-secret",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "plaintext-secret")
	assert.NotContains(t, rec.Body.String(), "hashed:")
	assert.NotContains(t, rec.Body.String(), `"password"`)

	// The store holds the hash, never the plaintext.
	stored := userStore.Users["alice@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "hashed:plaintext-secret", stored.HashedPassword)
	assert.Empty(t, stored.Password)
}

// A create that collides on either unique key must fail before the
// attachment reaches the asset store, or the rejected write would leave
// an orphaned object behind.
func TestUserHandlerCreateDuplicateUploadsNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userName  string
		userEmail string
	}{
		{"colliding name", "alice", "other@example.com"},
		{"colliding email", "someone else", "alice@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := mocks.NewMockUserStore()
			userStore.Users["alice@example.com"] = &domain.User{
				ID:    primitive.NewObjectID(),
				Name:  "alice",
				Email: "alice@example.com",
			}
			assets := mocks.NewMockAssetStore()
			handler := newUserHandler(userStore, assets, true)

			body, contentType := multipartBody(t, map[string]string{
				"name":     tt.userName,
				"email":    tt.userEmail,
				"password": "s3cret-password",
			}, true)
			req := httptest.NewRequest(http.MethodPost, "/api/user/v1/createUser", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			env := decodeEnvelope(t, rec)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "User already exists", env.Message)
			assert.Empty(t, assets.Uploaded, "rejected create must not upload the attachment")
			assert.Len(t, userStore.Users, 1)
		})
	}
}

func TestUserHandlerLogin(t *testing.T) {
	t.Parallel()

	seed := func(s *mocks.MockUserStore) {
		s.Users["alice@example.com"] = &domain.User{
			ID:             primitive.NewObjectID(),
			Name:           "alice",
			Email:          "alice@example.com",
			HashedPassword: "hashed:s3cret-password",
		}
	}

	t.Run("success returns token and user", func(t *testing.T) {
		userStore := mocks.NewMockUserStore()
		seed(userStore)
		handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

		rec := httptest.NewRecorder()
		handler.Login(rec, postJSON(t, "/api/user/v1/login", map[string]interface{}{
			"email":    "alice@example.com",
			"password": "s3cret-password",
		}))

		env := decodeEnvelope(t, rec)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User logged in successfully", env.Message)

		var data struct {
			Token string          `json:"token"`
			User  json.RawMessage `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "test-token", data.Token)
		assert.NotContains(t, string(data.User), "password")
		assert.NotContains(t, string(data.User), "hashed:")
	})

	// Unknown email and wrong password must be indistinguishable.
	t.Run("unknown email and wrong password look identical", func(t *testing.T) {
		unknownStore := mocks.NewMockUserStore()
		unknownHandler := newUserHandler(unknownStore, mocks.NewMockAssetStore(), true)

		recUnknown := httptest.NewRecorder()
		unknownHandler.Login(recUnknown, postJSON(t, "/api/user/v1/login", map[string]interface{}{
			"email":    "nobody@example.com",
			"password": "whatever",
		}))

		wrongStore := mocks.NewMockUserStore()
		seed(wrongStore)
		wrongHandler := newUserHandler(wrongStore, mocks.NewMockAssetStore(), false)

		recWrong := httptest.NewRecorder()
		wrongHandler.Login(recWrong, postJSON(t, "/api/user/v1/login", map[string]interface{}{
			"email":    "alice@example.com",
			"password": "not-the-password",
		}))

		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
		assert.Equal(t, decodeEnvelope(t, recUnknown).Message, decodeEnvelope(t, recWrong).Message)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		handler := newUserHandler(mocks.NewMockUserStore(), mocks.NewMockAssetStore(), true)

		rec := httptest.NewRecorder()
		handler.Login(rec, postJSON(t, "/api/user/v1/login", map[string]interface{}{
			"email": "alice@example.com",
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandlerList(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	userStore.Users["alice@example.com"] = &domain.User{
		ID:             primitive.NewObjectID(),
		Name:           "alice",
		Email:          "alice@example.com",
		HashedPassword: "hashed:x",
	}
	handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/api/user/v1/users", nil))

	env := decodeEnvelope(t, rec)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0]["name"])
	assert.NotContains(t, users[0], "password")
}

func userRouter(handler *api.UserHandler) chi.Router {
	r := chi.NewRouter()
	r.Put("/users/{userId}", handler.Update)
	r.Delete("/users/{userId}", handler.Delete)
	return r
}

func TestUserHandlerUpdate(t *testing.T) {
	t.Parallel()

	t.Run("partial update leaves other fields intact", func(t *testing.T) {
		id := primitive.NewObjectID()
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice@example.com"] = &domain.User{
			ID:             id,
			Name:           "alice",
			Email:          "alice@example.com",
			Bio:            "original bio",
			HashedPassword: "hashed:old",
		}
		handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

		body, _ := json.Marshal(map[string]interface{}{"bio": "updated bio"})
		req := httptest.NewRequest(http.MethodPut, "/users/"+id.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		updated := userStore.Users["alice@example.com"]
		assert.Equal(t, "updated bio", updated.Bio)
		assert.Equal(t, "alice", updated.Name)
		assert.Equal(t, "hashed:old", updated.HashedPassword)
		assert.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("password change is re-hashed", func(t *testing.T) {
		id := primitive.NewObjectID()
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice@example.com"] = &domain.User{
			ID:             id,
			Name:           "alice",
			Email:          "alice@example.com",
			HashedPassword: "hashed:old",
		}
		handler := newUserHandler(userStore, mocks.NewMockAssetStore(), true)

		body, _ := json.Marshal(map[string]interface{}{"password": "new-secret"})
		req := httptest.NewRequest(http.MethodPut, "/users/"+id.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hashed:new-secret", userStore.Users["alice@example.com"].HashedPassword)
		assert.NotContains(t, rec.Body.String(), "new-secret")
	})

	t.Run("unknown user", func(t *testing.T) {
		handler := newUserHandler(mocks.NewMockUserStore(), mocks.NewMockAssetStore(), true)

		body, _ := json.Marshal(map[string]interface{}{"bio": "x"})
		req := httptest.NewRequest(http.MethodPut, "/users/"+primitive.NewObjectID().Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		handler := newUserHandler(mocks.NewMockUserStore(), mocks.NewMockAssetStore(), true)

		body, _ := json.Marshal(map[string]interface{}{"bio": "x"})
		req := httptest.NewRequest(http.MethodPut, "/users/not-an-id", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes and acknowledges with the id only", func(t *testing.T) {
		id := primitive.NewObjectID()
		userStore := mocks.NewMockUserStore()
		userStore.Users["alice@example.com"] = &domain.User{
			ID:    id,
			Name:  "alice",
			Email: "alice@example.com",
			Image: &domain.AssetRef{URL: "https://assets.test/pic.png", Key: "pic.png"},
		}
		assets := mocks.NewMockAssetStore()
		handler := newUserHandler(userStore, assets, true)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+id.Hex(), nil)
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		env := decodeEnvelope(t, rec)
		require.Equal(t, http.StatusOK, rec.Code)

		var ack map[string]string
		require.NoError(t, json.Unmarshal(env.Data, &ack))
		assert.Equal(t, map[string]string{"userId": id.Hex()}, ack)

		assert.Empty(t, userStore.Users)
		assert.Equal(t, []string{"pic.png"}, assets.Removed)
	})

	t.Run("unknown user", func(t *testing.T) {
		handler := newUserHandler(mocks.NewMockUserStore(), mocks.NewMockAssetStore(), true)

		req := httptest.NewRequest(http.MethodDelete, "/users/"+primitive.NewObjectID().Hex(), nil)
		rec := httptest.NewRecorder()
		userRouter(handler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
