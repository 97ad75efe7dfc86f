package mocks

import (
	"context"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockUserRepository implements domain.UserRepository interface for testing
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, user *domain.User) error
	ListByRoleFunc  func(ctx context.Context, role string) ([]*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	if m.ListByRoleFunc != nil {
		return m.ListByRoleFunc(ctx, role)
	}
	// Default behavior: empty list
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
