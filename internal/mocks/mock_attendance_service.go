package mocks

import (
	"context"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockAttendanceService implements domain.AttendanceService interface for testing
type MockAttendanceService struct {
	MarkFunc    func(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error)
	LoginFunc   func(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error)
	LogoutFunc  func(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error)
	HistoryFunc func(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error)
	AllFunc     func(ctx context.Context) ([]*domain.AttendanceRecord, error)
}

// NewMockAttendanceService creates a new MockAttendanceService with default behaviors
func NewMockAttendanceService() *MockAttendanceService {
	return &MockAttendanceService{}
}

func (m *MockAttendanceService) Mark(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if m.MarkFunc != nil {
		return m.MarkFunc(ctx, userID, loc, ipAddress)
	}
	return &domain.AttendanceRecord{UserID: userID, Location: loc, Status: domain.AttendancePresent}, nil
}

func (m *MockAttendanceService) Login(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, userID, loc, ipAddress)
	}
	return &domain.AttendanceRecord{UserID: userID, Location: loc, Status: domain.AttendancePresent}, nil
}

func (m *MockAttendanceService) Logout(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID, loc, ipAddress)
	}
	return &domain.AttendanceRecord{UserID: userID, Location: loc, Status: domain.AttendancePresent}, nil
}

func (m *MockAttendanceService) History(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAttendanceService) All(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var _ domain.AttendanceService = (*MockAttendanceService)(nil)
