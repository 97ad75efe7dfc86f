package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/mocks"
)

func timePtr(t time.Time) *time.Time { return &t }

// March 2026: 31 days, Sundays fall on the 1st, 8th, 15th, 22nd, 29th.
func newReportService(users []*domain.User, records []*domain.AttendanceRecord, today time.Time) *ReportServiceImpl {
	userRepo := mocks.NewMockUserRepository()
	userRepo.ListByRoleFunc = func(ctx context.Context, role string) ([]*domain.User, error) {
		if role != domain.RoleEmployee {
			return nil, nil
		}
		return users, nil
	}
	attRepo := mocks.NewMockAttendanceRepository()
	attRepo.ListLoginRangeFunc = func(ctx context.Context, from, to time.Time) ([]*domain.AttendanceRecord, error) {
		return records, nil
	}

	svc := NewReportService(userRepo, attRepo)
	svc.now = func() time.Time { return today }
	return svc
}

func TestBuildMonthlyMatrixCells(t *testing.T) {
	joined := time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local)
	user := &domain.User{ID: 7, Name: "Ravi Kumar", Role: domain.RoleEmployee, CreatedAt: joined}

	login2 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	login3 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.Local)
	records := []*domain.AttendanceRecord{
		{UserID: 7, LoginTime: &login2, LogoutTime: timePtr(login2.Add(8*time.Hour + 30*time.Minute)), DurationMinutes: 510},
		{UserID: 7, LoginTime: &login3}, // still logged in
	}

	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	svc := newReportService([]*domain.User{user}, records, today)

	report, err := svc.BuildMonthlyMatrix(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("BuildMonthlyMatrix() error = %v", err)
	}
	if report.Days != 31 {
		t.Fatalf("BuildMonthlyMatrix() days = %d, want 31", report.Days)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("BuildMonthlyMatrix() rows = %d, want 1", len(report.Rows))
	}

	cells := report.Rows[0].Cells
	tests := []struct {
		day  int
		want string
	}{
		{1, "Holiday"},   // Sunday
		{2, "8h 30m"},    // closed window
		{3, "Logged In"}, // open window
		{4, "Absent"},    // workday with no record
		{8, "Holiday"},   // Sunday beats Absent
		{10, "Absent"},   // today itself
		{11, ""},         // future day
		{31, ""},         // future day
	}
	for _, tt := range tests {
		if got := cells[tt.day-1]; got != tt.want {
			t.Errorf("day %d cell = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestBuildMonthlyMatrixMidMonthJoin(t *testing.T) {
	// Joined on the 16th: earlier workdays must be blank, not Absent.
	joined := time.Date(2026, 3, 16, 11, 30, 0, 0, time.Local)
	user := &domain.User{ID: 8, Name: "Asha Singh", Role: domain.RoleEmployee, CreatedAt: joined}

	today := time.Date(2026, 3, 20, 9, 0, 0, 0, time.Local)
	svc := newReportService([]*domain.User{user}, nil, today)

	report, err := svc.BuildMonthlyMatrix(context.Background(), 3, 2026)
	if err != nil {
		t.Fatalf("BuildMonthlyMatrix() error = %v", err)
	}
	cells := report.Rows[0].Cells

	if cells[12] != "" { // 13th, before join
		t.Errorf("pre-join cell = %q, want blank", cells[12])
	}
	// Join day itself counts even though the account was created mid-day.
	if cells[15] != "Absent" {
		t.Errorf("join-day cell = %q, want Absent", cells[15])
	}
	if cells[16] != "Absent" { // 17th
		t.Errorf("post-join cell = %q, want Absent", cells[16])
	}
	if cells[21] != "Holiday" { // Sunday the 22nd
		t.Errorf("sunday cell = %q, want Holiday", cells[21])
	}
	if cells[23] != "" { // 24th, after today
		t.Errorf("future cell = %q, want blank", cells[23])
	}
}

func TestBuildMonthlyMatrixRejectsBadMonth(t *testing.T) {
	svc := newReportService(nil, nil, time.Now())
	for _, month := range []int{0, 13, -1} {
		if _, err := svc.BuildMonthlyMatrix(context.Background(), month, 2026); err == nil {
			t.Errorf("BuildMonthlyMatrix(%d) accepted an invalid month", month)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{510, "8h 30m"},
		{600, "10h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	report := &domain.MonthlyReport{
		Month: 3, Year: 2026, Days: 2,
		Rows: []domain.ReportRow{{
			Name:     "Ravi Kumar",
			JoinedOn: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			Role:     domain.RoleEmployee,
			Cells:    []string{"Holiday", "8h 30m"},
		}},
	}

	var buf bytes.Buffer
	svc := newReportService(nil, nil, time.Now())
	if err := svc.WriteCSV(&buf, report); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("WriteCSV() wrote %d lines, want 2", len(lines))
	}
	if want := "Name,Joined On,Role,1/3/2026,2/3/2026"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if want := "Ravi Kumar,2026-02-01,employee,Holiday,8h 30m"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}
