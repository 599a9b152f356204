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

// FoodItemStore implements store.FoodItemStore backed by MongoDB.
type FoodItemStore struct {
	col *mongo.Collection
}

// NewFoodItemStore creates a MongoDB implementation of store.FoodItemStore.
func NewFoodItemStore(db *mongo.Database) *FoodItemStore {
	return &FoodItemStore{col: db.Collection(foodItemsCollection)}
}

// Ensure FoodItemStore implements store.FoodItemStore.
var _ store.FoodItemStore = (*FoodItemStore)(nil)

// Create implements store.FoodItemStore.Create.
func (s *FoodItemStore) Create(ctx context.Context, item *domain.FoodItem) error {
	if err := item.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}

	if _, err := s.col.InsertOne(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrFoodItemExists
		}
		return store.NewStoreError("food item", "create", err)
	}
	return nil
}

// GetByID implements store.FoodItemStore.GetByID.
func (s *FoodItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrFoodItemNotFound
		}
		return nil, store.NewStoreError("food item", "get", err)
	}
	return &item, nil
}

// FindByNameAndCategory implements store.FoodItemStore.FindByNameAndCategory.
func (s *FoodItemStore) FindByNameAndCategory(
	ctx context.Context,
	name string,
	categoryID primitive.ObjectID,
) (*domain.FoodItem, error) {
	var item domain.FoodItem
	err := s.col.FindOne(ctx, bson.M{"name": name, "category": categoryID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrFoodItemNotFound
		}
		return nil, store.NewStoreError("food item", "find", err)
	}
	return &item, nil
}

// List implements store.FoodItemStore.List.
func (s *FoodItemStore) List(ctx context.Context) ([]domain.FoodItem, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("food item", "list", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	items := []domain.FoodItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, store.NewStoreError("food item", "list", err)
	}
	return items, nil
}

// Update implements store.FoodItemStore.Update.
func (s *FoodItemStore) Update(ctx context.Context, item *domain.FoodItem) error {
	if err := item.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrFoodItemExists
		}
		return store.NewStoreError("food item", "update", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrFoodItemNotFound
	}
	return nil
}

// Delete implements store.FoodItemStore.Delete.
func (s *FoodItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return store.NewStoreError("food item", "delete", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrFoodItemNotFound
	}
	return nil
}
