package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/mealworks/savor-api/internal/api"
	apimiddleware "github.com/mealworks/savor-api/internal/api/middleware"
	"github.com/mealworks/savor-api/internal/api/shared"
)

// rateLimit caps each client IP at 100 requests per 15 minutes.
const (
	rateLimitRequests = 100
	rateLimitWindow   = 15 * time.Minute
)

// routes creates and configures the application router with all routes
// and middleware.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(httprate.LimitByIP(rateLimitRequests, rateLimitWindow))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	uploader := app.uploader()
	userHandler := api.NewUserHandler(
		app.userStore, uploader, app.hasher, app.verifier, app.jwtService, app.logger,
	)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, uploader, app.logger)
	foodHandler := api.NewFoodHandler(app.foodStore, app.categoryStore, uploader, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/user/v1", func(r chi.Router) {
		r.Post("/createUser", userHandler.Create)
		r.Post("/login", userHandler.Login)
		r.Get("/users", userHandler.List)
		r.Put("/users/{userId}", userHandler.Update)
		r.Delete("/users/{userId}", userHandler.Delete)

		r.With(authMiddleware.Authenticate).Get("/me", userHandler.Me)
	})

	r.Route("/api/category/v1", func(r chi.Router) {
		r.Post("/categories", categoryHandler.Create)
		r.Get("/categories", categoryHandler.List)
		r.Get("/categories/{categoryId}", categoryHandler.Get)
		r.Put("/categories/{categoryId}", categoryHandler.Update)
		r.Delete("/categories/{categoryId}", categoryHandler.Delete)
	})

	r.Route("/api/food/v1", func(r chi.Router) {
		r.Post("/foodItems", foodHandler.Create)
		r.Get("/foodItems", foodHandler.List)
		r.Get("/foodItems/{foodId}", foodHandler.Get)
		r.Put("/foodItems/{foodId}", foodHandler.Update)
		r.Delete("/foodItems/{foodId}", foodHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, "ok", nil)
	})

	// Unmatched routes still answer with the uniform envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			fmt.Sprintf("No route found for %s", r.URL.Path))
	})

	return r
}
