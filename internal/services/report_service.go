package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// Cell classifications that are not formatted durations.
const (
	cellHoliday  = "Holiday"
	cellLoggedIn = "Logged In"
	cellAbsent   = "Absent"
)

// ReportServiceImpl implements domain.ReportService
type ReportServiceImpl struct {
	userRepo       domain.UserRepository
	attendanceRepo domain.AttendanceRepository
	now            func() time.Time
}

// NewReportService creates a new report service
func NewReportService(userRepo domain.UserRepository, attendanceRepo domain.AttendanceRepository) *ReportServiceImpl {
	return &ReportServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// BuildMonthlyMatrix implements domain.ReportService. Every employee gets a
// row with one cell per calendar day: Sundays are Holiday regardless of
// anything else, an open record is "Logged In", a closed record is its
// formatted duration, a missing record is Absent only for days between the
// user's join date and today, and blank otherwise.
func (s *ReportServiceImpl) BuildMonthlyMatrix(ctx context.Context, month, year int) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month out of range: %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)
	days := end.AddDate(0, 0, -1).Day()

	users, err := s.userRepo.ListByRole(ctx, domain.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListLoginRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance records: %w", err)
	}

	// Index by user and calendar day of LoginTime. A later record for the
	// same day wins, matching the single-record-per-day invariant.
	type dayKey struct {
		userID uint
		day    int
	}
	byDay := make(map[dayKey]*domain.AttendanceRecord, len(records))
	for _, rec := range records {
		if rec.LoginTime == nil {
			continue
		}
		byDay[dayKey{rec.UserID, rec.LoginTime.Day()}] = rec
	}

	today := s.now()
	report := &domain.MonthlyReport{Month: month, Year: year, Days: days}

	for _, user := range users {
		row := domain.ReportRow{
			UserID:   user.ID,
			Name:     user.Name,
			JoinedOn: user.CreatedAt,
			Role:     user.Role,
			Cells:    make([]string, days),
		}
		joined := startOfDay(user.CreatedAt)
		for day := 1; day <= days; day++ {
			date := start.AddDate(0, 0, day-1)
			row.Cells[day-1] = classifyDay(date, byDay[dayKey{user.ID, day}], joined, today)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

func classifyDay(date time.Time, rec *domain.AttendanceRecord, joined, today time.Time) string {
	if date.Weekday() == time.Sunday {
		return cellHoliday
	}
	if rec != nil {
		if rec.LogoutTime == nil {
			return cellLoggedIn
		}
		return FormatDuration(rec.DurationMinutes)
	}
	if !date.Before(joined) && !date.After(today) {
		return cellAbsent
	}
	return ""
}

// FormatDuration renders minutes as "2h", "45m", or "1h 30m", omitting the
// zero component.
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// WriteCSV implements domain.ReportService
func (s *ReportServiceImpl) WriteCSV(w io.Writer, report *domain.MonthlyReport) error {
	cw := csv.NewWriter(w)

	header := []string{"Name", "Joined On", "Role"}
	for day := 1; day <= report.Days; day++ {
		header = append(header, fmt.Sprintf("%d/%d/%d", day, report.Month, report.Year))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := append([]string{row.Name, row.JoinedOn.Format("2006-01-02"), row.Role}, row.Cells...)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
