package mocks

import (
	"context"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockAttendanceRepository implements domain.AttendanceRepository interface for testing
type MockAttendanceRepository struct {
	CreateFunc          func(ctx context.Context, rec *domain.AttendanceRecord) error
	FindLoginForDayFunc func(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*domain.AttendanceRecord, error)
	UpdateFunc          func(ctx context.Context, rec *domain.AttendanceRecord) error
	ListAllFunc         func(ctx context.Context) ([]*domain.AttendanceRecord, error)
	ListByUserFunc      func(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error)
	ListLoginRangeFunc  func(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error)
}

// NewMockAttendanceRepository creates a new MockAttendanceRepository with default behaviors
func NewMockAttendanceRepository() *MockAttendanceRepository {
	return &MockAttendanceRepository{}
}

func (m *MockAttendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	// Default behavior: success
	return nil
}

func (m *MockAttendanceRepository) FindLoginForDay(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*domain.AttendanceRecord, error) {
	if m.FindLoginForDayFunc != nil {
		return m.FindLoginForDayFunc(ctx, userID, dayStart, dayEnd)
	}
	// Default behavior: not found
	return nil, domain.ErrRecordNotFound
}

func (m *MockAttendanceRepository) Update(ctx context.Context, rec *domain.AttendanceRecord) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rec)
	}
	// Default behavior: success
	return nil
}

func (m *MockAttendanceRepository) ListAll(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	// Default behavior: empty list
	return nil, nil
}

func (m *MockAttendanceRepository) ListByUser(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	// Default behavior: empty list
	return nil, nil
}

func (m *MockAttendanceRepository) ListLoginRange(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
	if m.ListLoginRangeFunc != nil {
		return m.ListLoginRangeFunc(ctx, from, to)
	}
	// Default behavior: empty list
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AttendanceRepository = (*MockAttendanceRepository)(nil)
