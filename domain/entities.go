package domain

import "time"

// Roles assignable to a user account.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Attendance statuses recorded at mark time.
const (
	AttendancePresent = "present"
	AttendanceUnknown = "unknown"
)

// User represents an account in the system
type User struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	Photo        string
	// DeviceID is the device fingerprint bound at first login. Logins from
	// any other device are refused until the binding is cleared.
	DeviceID  string
	PushToken string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinate is a WGS84 point reported by a client device.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies in the representable range.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// AttendanceRecord is one user's presence window for one calendar day.
// At most one login record exists per (user, day), keyed by the day of
// LoginTime; Mark-only records carry no login/logout pair and are not
// day-deduplicated.
type AttendanceRecord struct {
	ID        uint
	UserID    uint
	User      *User
	Location  Coordinate
	IPAddress string
	Status    string
	LoginTime *time.Time
	// LogoutTime and DurationMinutes are set together by Logout. Duration is
	// always recomputed from the record's current LoginTime.
	LogoutTime      *time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

// ServiceLocation is where a field task must be carried out.
type ServiceLocation struct {
	Coordinate
	Address string `json:"address"`
}

// ReachedLocation records a geo-verified arrival at the service location.
type ReachedLocation struct {
	Coordinate
	Timestamp time.Time `json:"timestamp"`
}

// TaskHistoryEntry is one element of a task's append-only audit trail.
type TaskHistoryEntry struct {
	Status    TaskStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	ActorID   uint       `json:"actor_id"`
	Comment   string     `json:"comment,omitempty"`
}

// Task is one field-service work item.
type Task struct {
	ID              uint
	CustomerName    string
	CustomerContact string
	CustomerAddress string
	Description     string
	ServiceLocation ServiceLocation
	AssignedTo      uint
	AssignedBy      uint
	Status          TaskStatus
	// Photos is append-only; URIs are opaque to the core.
	Photos              []string
	ReachedLocation     *ReachedLocation
	CompletedAt         *time.Time
	VerifiedAt          *time.Time
	VerifiedBy          uint
	VerificationComment string
	RejectedComment     string
	History             []TaskHistoryEntry
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// StatusCount is one bucket of the task analytics summary.
type StatusCount struct {
	Status TaskStatus `json:"status"`
	Count  int64      `json:"count"`
}

// AuthRequest represents authentication credentials
type AuthRequest struct {
	Email    string
	Password string
	DeviceID string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	SessionID    string
	ExpiresIn    int64
}

// OTPRequest represents an issued OTP challenge
type OTPRequest struct {
	Email     string
	Code      string
	UserID    uint
	ExpiresAt time.Time
	Attempts  int
}

// Session represents a user session
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	SessionID string `json:"session_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
