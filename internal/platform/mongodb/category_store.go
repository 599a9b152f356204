package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// CategoryStore implements store.CategoryStore backed by MongoDB.
type CategoryStore struct {
	col *mongo.Collection
}

// NewCategoryStore creates a MongoDB implementation of store.CategoryStore.
func NewCategoryStore(db *mongo.Database) *CategoryStore {
	return &CategoryStore{col: db.Collection(categoriesCollection)}
}

// Ensure CategoryStore implements store.CategoryStore.
var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}

	if _, err := s.col.InsertOne(ctx, category); err != nil {
		return store.NewStoreError("category", "create", err)
	}
	return nil
}

// GetByID implements store.CategoryStore.GetByID.
func (s *CategoryStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var category domain.Category
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrCategoryNotFound
		}
		return nil, store.NewStoreError("category", "get", err)
	}
	return &category, nil
}

// List implements store.CategoryStore.List.
func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("category", "list", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	categories := []domain.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, store.NewStoreError("category", "list", err)
	}
	return categories, nil
}

// Update implements store.CategoryStore.Update.
func (s *CategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if err := category.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return store.NewStoreError("category", "update", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}

// Delete implements store.CategoryStore.Delete.
func (s *CategoryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return store.NewStoreError("category", "delete", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrCategoryNotFound
	}
	return nil
}
