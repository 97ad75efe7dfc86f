package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/geo"
)

// AttendanceServiceImpl implements domain.AttendanceService
type AttendanceServiceImpl struct {
	attendanceRepo domain.AttendanceRepository
	fence          geo.Fence
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service bound to the office fence
func NewAttendanceService(attendanceRepo domain.AttendanceRepository, fence geo.Fence) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		fence:          fence,
		now:            time.Now,
	}
}

// Mark implements domain.AttendanceService. It always creates a new record;
// the fence only decides the recorded status, it never rejects the mark.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}

	status := domain.AttendanceUnknown
	if s.fence.Contains(loc) {
		status = domain.AttendancePresent
	}

	rec := &domain.AttendanceRecord{
		UserID:    userID,
		Location:  loc,
		IPAddress: ipAddress,
		Status:    status,
	}
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save attendance mark: %w", err)
	}
	return rec, nil
}

// Login implements domain.AttendanceService. Re-login on the same day is
// permitted and resets the window's start time.
func (s *AttendanceServiceImpl) Login(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}
	if !s.fence.Contains(loc) {
		return nil, domain.ErrLocationRejected
	}

	now := s.now()
	dayStart, dayEnd := dayBounds(now)

	rec, err := s.attendanceRepo.FindLoginForDay(ctx, userID, dayStart, dayEnd)
	switch err {
	case nil:
		rec.LoginTime = &now
		if err := s.attendanceRepo.Update(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to update attendance record: %w", err)
		}
		return rec, nil
	case domain.ErrRecordNotFound:
		rec = &domain.AttendanceRecord{
			UserID:    userID,
			Location:  loc,
			IPAddress: ipAddress,
			Status:    domain.AttendancePresent,
			LoginTime: &now,
		}
		if err := s.attendanceRepo.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("failed to create attendance record: %w", err)
		}
		return rec, nil
	default:
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}
}

// Logout implements domain.AttendanceService. Duration is derived from the
// record's current LoginTime, so a re-logout after a re-login recomputes it.
func (s *AttendanceServiceImpl) Logout(ctx context.Context, userID uint, loc domain.Coordinate, ipAddress string) (*domain.AttendanceRecord, error) {
	if !loc.Valid() {
		return nil, domain.ErrInvalidCoordinate
	}
	if !s.fence.Contains(loc) {
		return nil, domain.ErrLocationRejected
	}

	now := s.now()
	dayStart, dayEnd := dayBounds(now)

	rec, err := s.attendanceRepo.FindLoginForDay(ctx, userID, dayStart, dayEnd)
	if err != nil {
		if err == domain.ErrRecordNotFound {
			return nil, domain.ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}

	rec.LogoutTime = &now
	rec.DurationMinutes = durationMinutes(*rec.LoginTime, now)
	if err := s.attendanceRepo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return rec, nil
}

// History implements domain.AttendanceService
func (s *AttendanceServiceImpl) History(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByUser(ctx, userID)
}

// All implements domain.AttendanceService
func (s *AttendanceServiceImpl) All(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListAll(ctx)
}

// dayBounds returns the [start, end) window of the calendar day containing t.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// durationMinutes rounds to the nearest whole minute, not down.
func durationMinutes(login, logout time.Time) int {
	return int(math.Round(logout.Sub(login).Minutes()))
}
