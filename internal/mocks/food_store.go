package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mealworks/savor-api/internal/domain"
	"github.com/mealworks/savor-api/internal/store"
)

// MockFoodItemStore implements store.FoodItemStore for testing.
type MockFoodItemStore struct {
	mu sync.Mutex

	CreateFn                func(ctx context.Context, item *domain.FoodItem) error
	GetByIDFn               func(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error)
	FindByNameAndCategoryFn func(ctx context.Context, name string, categoryID primitive.ObjectID) (*domain.FoodItem, error)
	ListFn                  func(ctx context.Context) ([]domain.FoodItem, error)
	UpdateFn                func(ctx context.Context, item *domain.FoodItem) error
	DeleteFn                func(ctx context.Context, id primitive.ObjectID) error

	Items map[primitive.ObjectID]*domain.FoodItem

	CreateError error
}

// Ensure MockFoodItemStore implements store.FoodItemStore.
var _ store.FoodItemStore = (*MockFoodItemStore)(nil)

// NewMockFoodItemStore creates a mock store with initialized defaults.
func NewMockFoodItemStore() *MockFoodItemStore {
	return &MockFoodItemStore{Items: make(map[primitive.ObjectID]*domain.FoodItem)}
}

// Create implements the FoodItemStore interface. The default behavior
// enforces the (name, category) uniqueness pair the way the real
// collection's unique index does.
func (m *MockFoodItemStore) Create(ctx context.Context, item *domain.FoodItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}
	if m.CreateError != nil {
		return m.CreateError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.Items {
		if existing.Name == item.Name && existing.CategoryID == item.CategoryID {
			return store.ErrFoodItemExists
		}
	}

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	m.Items[item.ID] = item
	return nil
}

// GetByID implements the FoodItemStore interface.
func (m *MockFoodItemStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, exists := m.Items[id]
	if !exists {
		return nil, store.ErrFoodItemNotFound
	}
	return item, nil
}

// FindByNameAndCategory implements the FoodItemStore interface.
func (m *MockFoodItemStore) FindByNameAndCategory(
	ctx context.Context,
	name string,
	categoryID primitive.ObjectID,
) (*domain.FoodItem, error) {
	if m.FindByNameAndCategoryFn != nil {
		return m.FindByNameAndCategoryFn(ctx, name, categoryID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.Items {
		if item.Name == name && item.CategoryID == categoryID {
			return item, nil
		}
	}
	return nil, store.ErrFoodItemNotFound
}

// List implements the FoodItemStore interface.
func (m *MockFoodItemStore) List(ctx context.Context) ([]domain.FoodItem, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]domain.FoodItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, *item)
	}
	return items, nil
}

// Update implements the FoodItemStore interface.
func (m *MockFoodItemStore) Update(ctx context.Context, item *domain.FoodItem) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, item)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Items[item.ID]; !exists {
		return store.ErrFoodItemNotFound
	}
	for _, existing := range m.Items {
		if existing.ID != item.ID &&
			existing.Name == item.Name &&
			existing.CategoryID == item.CategoryID {
			return store.ErrFoodItemExists
		}
	}
	m.Items[item.ID] = item
	return nil
}

// Delete implements the FoodItemStore interface.
func (m *MockFoodItemStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Items[id]; !exists {
		return store.ErrFoodItemNotFound
	}
	delete(m.Items, id)
	return nil
}
