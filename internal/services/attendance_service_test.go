package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/geo"
	"github.com/shreyanshTechz/attendance-backend/internal/mocks"
)

var officeFence = geo.Fence{
	Reference:   domain.Coordinate{Latitude: 26.7428378, Longitude: 83.3797713},
	ToleranceKm: 0.2,
}

var atOffice = domain.Coordinate{Latitude: 26.7428378, Longitude: 83.3797713}

// farAway is well outside any reasonable office tolerance.
var farAway = domain.Coordinate{Latitude: 28.6139, Longitude: 77.2090}

func newAttendanceService(repo domain.AttendanceRepository, at time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(repo, officeFence)
	svc.now = func() time.Time { return at }
	return svc
}

func TestAttendanceMark(t *testing.T) {
	tests := []struct {
		name       string
		loc        domain.Coordinate
		wantStatus string
		wantErr    error
	}{
		{"inside fence", atOffice, domain.AttendancePresent, nil},
		{"outside fence still recorded", farAway, domain.AttendanceUnknown, nil},
		{"invalid latitude", domain.Coordinate{Latitude: 91, Longitude: 0}, "", domain.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAttendanceRepository()
			var created *domain.AttendanceRecord
			repo.CreateFunc = func(ctx context.Context, rec *domain.AttendanceRecord) error {
				created = rec
				return nil
			}

			svc := newAttendanceService(repo, time.Now())
			rec, err := svc.Mark(context.Background(), 1, tt.loc, "10.0.0.1")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Mark() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if created != nil {
					t.Fatal("Mark() persisted a record despite invalid input")
				}
				return
			}
			if rec.Status != tt.wantStatus {
				t.Errorf("Mark() status = %q, want %q", rec.Status, tt.wantStatus)
			}
			if created == nil {
				t.Error("Mark() did not persist the record")
			}
		})
	}
}

func TestAttendanceLoginCreatesRecord(t *testing.T) {
	loginAt := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	repo := mocks.NewMockAttendanceRepository()
	var created *domain.AttendanceRecord
	repo.CreateFunc = func(ctx context.Context, rec *domain.AttendanceRecord) error {
		created = rec
		return nil
	}

	svc := newAttendanceService(repo, loginAt)
	rec, err := svc.Login(context.Background(), 7, atOffice, "10.0.0.1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if created == nil {
		t.Fatal("Login() did not create a record")
	}
	if rec.LoginTime == nil || !rec.LoginTime.Equal(loginAt) {
		t.Errorf("Login() LoginTime = %v, want %v", rec.LoginTime, loginAt)
	}
	if rec.Status != domain.AttendancePresent {
		t.Errorf("Login() status = %q, want %q", rec.Status, domain.AttendancePresent)
	}
}

func TestAttendanceLoginOutsideFence(t *testing.T) {
	repo := mocks.NewMockAttendanceRepository()
	repo.CreateFunc = func(ctx context.Context, rec *domain.AttendanceRecord) error {
		t.Fatal("Login() persisted a record outside the fence")
		return nil
	}

	svc := newAttendanceService(repo, time.Now())
	_, err := svc.Login(context.Background(), 7, farAway, "10.0.0.1")
	if !errors.Is(err, domain.ErrLocationRejected) {
		t.Fatalf("Login() error = %v, want ErrLocationRejected", err)
	}
}

func TestAttendanceReLoginOverwritesStart(t *testing.T) {
	firstLogin := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
	secondLogin := firstLogin.Add(2 * time.Hour)

	existing := &domain.AttendanceRecord{
		ID:        42,
		UserID:    7,
		Status:    domain.AttendancePresent,
		LoginTime: &firstLogin,
	}

	repo := mocks.NewMockAttendanceRepository()
	repo.FindLoginForDayFunc = func(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*domain.AttendanceRecord, error) {
		return existing, nil
	}
	createCalled := false
	repo.CreateFunc = func(ctx context.Context, rec *domain.AttendanceRecord) error {
		createCalled = true
		return nil
	}

	svc := newAttendanceService(repo, secondLogin)
	rec, err := svc.Login(context.Background(), 7, atOffice, "10.0.0.1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if createCalled {
		t.Error("re-login created a second record for the day")
	}
	if rec.ID != 42 {
		t.Errorf("re-login returned record %d, want the existing 42", rec.ID)
	}
	if !rec.LoginTime.Equal(secondLogin) {
		t.Errorf("re-login LoginTime = %v, want %v", rec.LoginTime, secondLogin)
	}
}

func TestAttendanceLogout(t *testing.T) {
	login := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		logoutAt     time.Time
		wantDuration int
	}{
		{"full work day", login.Add(8*time.Hour + 30*time.Minute), 510},
		{"sub-minute rounds to nearest", login.Add(90 * time.Second), 2},
		{"immediate logout", login, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &domain.AttendanceRecord{UserID: 7, LoginTime: &login, Status: domain.AttendancePresent}
			repo := mocks.NewMockAttendanceRepository()
			repo.FindLoginForDayFunc = func(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*domain.AttendanceRecord, error) {
				return rec, nil
			}

			svc := newAttendanceService(repo, tt.logoutAt)
			got, err := svc.Logout(context.Background(), 7, atOffice, "10.0.0.1")
			if err != nil {
				t.Fatalf("Logout() error = %v", err)
			}
			if got.DurationMinutes != tt.wantDuration {
				t.Errorf("Logout() duration = %d, want %d", got.DurationMinutes, tt.wantDuration)
			}
			if got.LogoutTime == nil || !got.LogoutTime.Equal(tt.logoutAt) {
				t.Errorf("Logout() LogoutTime = %v, want %v", got.LogoutTime, tt.logoutAt)
			}
		})
	}
}

func TestAttendanceLogoutWithoutLogin(t *testing.T) {
	repo := mocks.NewMockAttendanceRepository()

	svc := newAttendanceService(repo, time.Now())
	_, err := svc.Logout(context.Background(), 7, atOffice, "10.0.0.1")
	if !errors.Is(err, domain.ErrNoActiveSession) {
		t.Fatalf("Logout() error = %v, want ErrNoActiveSession", err)
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 3, 9, 17, 45, 12, 0, time.UTC)
	start, end := dayBounds(at)

	if want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("dayBounds() start = %v, want %v", start, want)
	}
	if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
		t.Errorf("dayBounds() end = %v, want %v", end, want)
	}
}
