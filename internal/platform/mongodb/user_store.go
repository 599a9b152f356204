package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// UserStore implements store.UserStore backed by a MongoDB collection.
type UserStore struct {
	col *mongo.Collection
}

// NewUserStore creates a MongoDB implementation of store.UserStore.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.ErrInvalidEntity
	}
	if user.HashedPassword == "" {
		return store.ErrInvalidEntity
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return mapUserDuplicate(err)
		}
		return store.NewStoreError("user", "create", err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", err)
	}
	return &user, nil
}

// GetByName implements store.UserStore.GetByName.
func (s *UserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", err)
	}
	return &user, nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, store.NewStoreError("user", "list", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	users := []domain.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, store.NewStoreError("user", "list", err)
	}
	return users, nil
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return store.ErrInvalidEntity
	}

	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return mapUserDuplicate(err)
		}
		return store.NewStoreError("user", "update", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return store.NewStoreError("user", "delete", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// mapUserDuplicate distinguishes which unique index rejected the write
// by inspecting the duplicate-key message.
func mapUserDuplicate(err error) error {
	if strings.Contains(err.Error(), "email") {
		return store.ErrEmailExists
	}
	return store.ErrUserNameExists
}
