package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailInUse         = errors.New("email already in use")
	ErrDeviceMismatch     = errors.New("login not allowed from this device")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// Geo-fence and attendance errors
var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrLocationRejected  = errors.New("not within office location")
	ErrNoActiveSession   = errors.New("no login found for today")
	ErrRecordNotFound    = errors.New("attendance record not found")
)

// Task lifecycle errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidAction     = errors.New("invalid verification action")
	ErrNoPhotos          = errors.New("no photos supplied")
	ErrNotAtLocation     = errors.New("not at assigned location")
)

// OTP errors
var (
	ErrOTPExpired     = errors.New("otp has expired")
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
	ErrOTPNotFound    = errors.New("otp not found")
	ErrOTPResendLimit = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)
