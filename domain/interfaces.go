package domain

import (
	"context"
	"io"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	ListByRole(ctx context.Context, role string) ([]*User, error)
}

// AttendanceRepository defines attendance data access operations
type AttendanceRepository interface {
	Create(ctx context.Context, rec *AttendanceRecord) error
	// FindLoginForDay returns the record whose LoginTime falls in
	// [dayStart, dayEnd), or ErrRecordNotFound.
	FindLoginForDay(ctx context.Context, userID uint, dayStart, dayEnd time.Time) (*AttendanceRecord, error)
	Update(ctx context.Context, rec *AttendanceRecord) error
	ListAll(ctx context.Context) ([]*AttendanceRecord, error)
	ListByUser(ctx context.Context, userID uint) ([]*AttendanceRecord, error)
	// ListLoginRange returns records with LoginTime in [from, to).
	ListLoginRange(ctx context.Context, from, to time.Time) ([]*AttendanceRecord, error)
}

// TaskRepository defines task data access operations
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uint) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*Task, error)
	CountByStatus(ctx context.Context) (int64, []StatusCount, error)
}

// SessionRepository defines session data access operations
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, name, email, password, deviceID string) (*User, error)
	Login(ctx context.Context, req AuthRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, name, photo string) (*User, error)
	ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
	RequestEmailChange(ctx context.Context, userID uint, newEmail string) error
	ConfirmEmailChange(ctx context.Context, userID uint, newEmail, code string) error
}

// AttendanceService tracks daily presence windows against the office fence.
type AttendanceService interface {
	// Mark records a one-off presence ping; the fence decides present/unknown.
	Mark(ctx context.Context, userID uint, loc Coordinate, ipAddress string) (*AttendanceRecord, error)
	// Login starts (or restarts) today's presence window.
	Login(ctx context.Context, userID uint, loc Coordinate, ipAddress string) (*AttendanceRecord, error)
	// Logout closes today's presence window and derives its duration.
	Logout(ctx context.Context, userID uint, loc Coordinate, ipAddress string) (*AttendanceRecord, error)
	History(ctx context.Context, userID uint) ([]*AttendanceRecord, error)
	All(ctx context.Context) ([]*AttendanceRecord, error)
}

// TaskDraft carries the caller-supplied fields for task creation.
type TaskDraft struct {
	CustomerName    string
	CustomerContact string
	CustomerAddress string
	Description     string
	Location        Coordinate
	AssignedTo      uint
	AssignedBy      uint
}

// TaskPatch carries optional field edits outside the state machine.
type TaskPatch struct {
	CustomerName    *string
	CustomerContact *string
	CustomerAddress *string
	Description     *string
	AssignedTo      *uint
}

// TaskService owns the task lifecycle state machine.
type TaskService interface {
	Create(ctx context.Context, draft TaskDraft) (*Task, error)
	Get(ctx context.Context, id uint) (*Task, error)
	List(ctx context.Context) ([]*Task, error)
	Patch(ctx context.Context, id uint, patch TaskPatch) (*Task, error)
	Delete(ctx context.Context, id uint) error
	// Transition is the single authoritative status mutation path.
	Transition(ctx context.Context, id uint, target TaskStatus, actorID uint, comment string) (*Task, error)
	AddPhotos(ctx context.Context, id uint, uris []string, autoComplete bool, actorID uint) (*Task, error)
	Verify(ctx context.Context, id uint, action string, actorID uint, comment string) (*Task, error)
	MarkReached(ctx context.Context, id uint, loc Coordinate) (*Task, error)
	Summary(ctx context.Context) (int64, []StatusCount, error)
}

// MonthlyReport is a per-user, per-day attendance matrix for one month.
type MonthlyReport struct {
	Month int
	Year  int
	Days  int
	Rows  []ReportRow
}

// ReportRow is one user's row in a monthly report.
type ReportRow struct {
	UserID   uint
	Name     string
	JoinedOn time.Time
	Role     string
	// Cells holds one classification per day of the month: "Holiday",
	// "Logged In", a formatted duration, "Absent", or "".
	Cells []string
}

// ReportService builds monthly attendance matrices.
type ReportService interface {
	BuildMonthlyMatrix(ctx context.Context, month, year int) (*MonthlyReport, error)
	WriteCSV(w io.Writer, report *MonthlyReport) error
}

// PhotoStore persists uploaded task photos and returns opaque URIs.
type PhotoStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
}

// OTPService defines OTP operations
type OTPService interface {
	Generate(ctx context.Context, email string, userID uint) (*OTPRequest, error)
	Verify(ctx context.Context, email, code string, userID uint) (bool, error)
	CanResend(ctx context.Context, email string) (bool, int64, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshToken(userID uint, role string, sessionID string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, body string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
