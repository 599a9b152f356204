package main

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealworks/savor-api/internal/api"
	"github.com/mealworks/savor-api/internal/config"
	"github.com/mealworks/savor-api/internal/platform/mongodb"
	"github.com/mealworks/savor-api/internal/service/auth"
	"github.com/mealworks/savor-api/internal/store"
)

// application bundles the wired dependencies behind the HTTP surface.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore     store.UserStore
	categoryStore store.CategoryStore
	foodStore     store.FoodItemStore
	assetStore    store.AssetStore

	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
}

// newApplication wires stores and services into an application.
func newApplication(
	cfg *config.Config,
	log *slog.Logger,
	db *mongo.Database,
	assets store.AssetStore,
) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:        cfg,
		logger:        log,
		userStore:     mongodb.NewUserStore(db),
		categoryStore: mongodb.NewCategoryStore(db),
		foodStore:     mongodb.NewFoodItemStore(db),
		assetStore:    assets,
		jwtService:    jwtService,
		hasher:        auth.NewBcryptHasher(),
		verifier:      auth.NewBcryptVerifier(),
	}, nil
}

// uploader builds the request-level upload helper from the configured
// constraints.
func (app *application) uploader() *api.Uploader {
	return api.NewUploader(app.assetStore, app.config.Upload, app.logger)
}
