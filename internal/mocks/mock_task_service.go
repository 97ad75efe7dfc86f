package mocks

import (
	"context"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockTaskService implements domain.TaskService interface for testing
type MockTaskService struct {
	CreateFunc      func(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	GetFunc         func(ctx context.Context, id uint) (*domain.Task, error)
	ListFunc        func(ctx context.Context) ([]*domain.Task, error)
	PatchFunc       func(ctx context.Context, id uint, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFunc      func(ctx context.Context, id uint) error
	TransitionFunc  func(ctx context.Context, id uint, target domain.TaskStatus, actorID uint, comment string) (*domain.Task, error)
	AddPhotosFunc   func(ctx context.Context, id uint, uris []string, autoComplete bool, actorID uint) (*domain.Task, error)
	VerifyFunc      func(ctx context.Context, id uint, action string, actorID uint, comment string) (*domain.Task, error)
	MarkReachedFunc func(ctx context.Context, id uint, loc domain.Coordinate) (*domain.Task, error)
	SummaryFunc     func(ctx context.Context) (int64, []domain.StatusCount, error)
}

// NewMockTaskService creates a new MockTaskService with default behaviors
func NewMockTaskService() *MockTaskService {
	return &MockTaskService{}
}

func (m *MockTaskService) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, draft)
	}
	return &domain.Task{Status: domain.TaskAssigned}, nil
}

func (m *MockTaskService) Get(ctx context.Context, id uint) (*domain.Task, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockTaskService) Patch(ctx context.Context, id uint, patch domain.TaskPatch) (*domain.Task, error) {
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, id, patch)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskService) Transition(ctx context.Context, id uint, target domain.TaskStatus, actorID uint, comment string) (*domain.Task, error) {
	if m.TransitionFunc != nil {
		return m.TransitionFunc(ctx, id, target, actorID, comment)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) AddPhotos(ctx context.Context, id uint, uris []string, autoComplete bool, actorID uint) (*domain.Task, error) {
	if m.AddPhotosFunc != nil {
		return m.AddPhotosFunc(ctx, id, uris, autoComplete, actorID)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) Verify(ctx context.Context, id uint, action string, actorID uint, comment string) (*domain.Task, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, id, action, actorID, comment)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) MarkReached(ctx context.Context, id uint, loc domain.Coordinate) (*domain.Task, error) {
	if m.MarkReachedFunc != nil {
		return m.MarkReachedFunc(ctx, id, loc)
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskService) Summary(ctx context.Context) (int64, []domain.StatusCount, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx)
	}
	return 0, nil, nil
}

// Compile-time interface compliance verification
var _ domain.TaskService = (*MockTaskService)(nil)
