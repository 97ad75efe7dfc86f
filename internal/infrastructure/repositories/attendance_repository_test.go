package repositories

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&DBUser{}, &DBAttendance{}, &DBTask{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func TestAttendanceRepositoryImpl_FindLoginForDay(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	login := day.Add(9 * time.Hour)
	yesterdayLogin := day.Add(-15 * time.Hour)

	tests := []struct {
		name          string
		seed          []*domain.AttendanceRecord
		userID        uint
		expectedError error
	}{
		{
			name: "record within the day window",
			seed: []*domain.AttendanceRecord{
				{UserID: 7, Status: domain.AttendancePresent, LoginTime: &login},
			},
			userID: 7,
		},
		{
			name: "record from the previous day is out of window",
			seed: []*domain.AttendanceRecord{
				{UserID: 7, Status: domain.AttendancePresent, LoginTime: &yesterdayLogin},
			},
			userID:        7,
			expectedError: domain.ErrRecordNotFound,
		},
		{
			name: "other user's record does not match",
			seed: []*domain.AttendanceRecord{
				{UserID: 8, Status: domain.AttendancePresent, LoginTime: &login},
			},
			userID:        7,
			expectedError: domain.ErrRecordNotFound,
		},
		{
			name: "mark-only record without login time is ignored",
			seed: []*domain.AttendanceRecord{
				{UserID: 7, Status: domain.AttendanceUnknown},
			},
			userID:        7,
			expectedError: domain.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewAttendanceRepository(setupTestDB(t))
			ctx := context.Background()
			for _, rec := range tt.seed {
				if err := repo.Create(ctx, rec); err != nil {
					t.Fatalf("seed: %v", err)
				}
			}

			got, err := repo.FindLoginForDay(ctx, tt.userID, day, day.AddDate(0, 0, 1))
			if err != tt.expectedError {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
			if tt.expectedError == nil {
				if got == nil || got.UserID != tt.userID {
					t.Fatalf("unexpected record: %+v", got)
				}
				if got.LoginTime == nil || !got.LoginTime.Equal(login) {
					t.Errorf("login time not preserved: %v", got.LoginTime)
				}
			}
		})
	}
}

func TestAttendanceRepositoryImpl_UpdateOverwritesWindow(t *testing.T) {
	repo := NewAttendanceRepository(setupTestDB(t))
	ctx := context.Background()

	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	first := day.Add(9 * time.Hour)
	rec := &domain.AttendanceRecord{
		UserID:    3,
		Status:    domain.AttendancePresent,
		LoginTime: &first,
		Location:  domain.Coordinate{Latitude: 26.7428378, Longitude: 83.3797713},
	}
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}

	relogin := day.Add(10 * time.Hour)
	logout := day.Add(17*time.Hour + 30*time.Minute)
	rec.LoginTime = &relogin
	rec.LogoutTime = &logout
	rec.DurationMinutes = 450
	if err := repo.Update(ctx, rec); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.FindLoginForDay(ctx, 3, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("update must mutate in place, got new row %d", got.ID)
	}
	if !got.LoginTime.Equal(relogin) || got.LogoutTime == nil || !got.LogoutTime.Equal(logout) {
		t.Errorf("window not overwritten: login=%v logout=%v", got.LoginTime, got.LogoutTime)
	}
	if got.DurationMinutes != 450 {
		t.Errorf("duration = %d, want 450", got.DurationMinutes)
	}
}

func TestAttendanceRepositoryImpl_ListLoginRange(t *testing.T) {
	repo := NewAttendanceRepository(setupTestDB(t))
	ctx := context.Background()

	times := []time.Time{
		time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, ts := range times {
		loginTime := ts
		err := repo.Create(ctx, &domain.AttendanceRecord{
			UserID:    uint(i + 1),
			Status:    domain.AttendancePresent,
			LoginTime: &loginTime,
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	got, err := repo.ListLoginRange(ctx, from, to)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records in March, got %d", len(got))
	}
	if got[0].UserID != 2 || got[1].UserID != 3 {
		t.Errorf("expected ascending login order, got users %d, %d", got[0].UserID, got[1].UserID)
	}
}
