package mocks

import (
	"context"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockTaskRepository implements domain.TaskRepository interface for testing
type MockTaskRepository struct {
	CreateFunc        func(ctx context.Context, task *domain.Task) error
	FindByIDFunc      func(ctx context.Context, id uint) (*domain.Task, error)
	UpdateFunc        func(ctx context.Context, task *domain.Task) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ListFunc          func(ctx context.Context) ([]*domain.Task, error)
	CountByStatusFunc func(ctx context.Context) (int64, []domain.StatusCount, error)
}

// NewMockTaskRepository creates a new MockTaskRepository with default behaviors
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	// Default behavior: success
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uint) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	// Default behavior: success
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

func (m *MockTaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	// Default behavior: empty list
	return nil, nil
}

func (m *MockTaskRepository) CountByStatus(ctx context.Context) (int64, []domain.StatusCount, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	// Default behavior: empty summary
	return 0, nil, nil
}

// Compile-time interface compliance verification
var _ domain.TaskRepository = (*MockTaskRepository)(nil)
