// Package mongodb implements the store interfaces on top of MongoDB.
//
// Uniqueness constraints (user email, user name, food item name within a
// category) are enforced by unique indexes created at startup, so a race
// between two concurrent creates is settled by the database rejecting
// the second write rather than by the handler's pre-check.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mealworks/savor-api/internal/config"
)

// Collection names.
const (
	usersCollection      = "users"
	categoriesCollection = "categories"
	foodItemsCollection  = "foodItems"
)

// connectTimeout bounds the initial server selection.
const connectTimeout = 10 * time.Second

// Connect establishes a MongoDB connection and returns the database
// handle. The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Name), nil
}

// EnsureIndexes creates the unique indexes the uniqueness invariants
// rely on. Safe to call on every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(usersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}

	food := db.Collection(foodItemsCollection)
	_, err = food.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "category", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create food item index: %w", err)
	}

	return nil
}
