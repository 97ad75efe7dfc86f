package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/mocks"
)

func newAuthTestContext(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest("POST", "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{"success", nil, http.StatusOK, ""},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"other device", domain.ErrDeviceMismatch, http.StatusForbidden, "registered device"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.svcErr != nil {
				authSvc.LoginFunc = func(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
					return nil, tt.svcErr
				}
			}
			h := NewAuthHandlers(authSvc)

			c, w := newAuthTestContext(t, gin.H{
				"email": "ravi@example.com", "password": "secret123", "device_id": "device-1",
			})
			h.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
			} else {
				assert.Contains(t, w.Body.String(), "access_token")
			}
		})
	}
}

func TestLoginHandlerRequiresDeviceID(t *testing.T) {
	h := NewAuthHandlers(mocks.NewMockAuthService())

	c, w := newAuthTestContext(t, gin.H{"email": "ravi@example.com", "password": "secret123"})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       gin.H
		svcErr     error
		wantStatus int
	}{
		{
			"created",
			gin.H{"name": "Ravi", "email": "ravi@example.com", "password": "secret123"},
			nil, http.StatusCreated,
		},
		{
			"duplicate",
			gin.H{"name": "Ravi", "email": "ravi@example.com", "password": "secret123"},
			domain.ErrUserAlreadyExists, http.StatusConflict,
		},
		{
			"short password",
			gin.H{"name": "Ravi", "email": "ravi@example.com", "password": "abc"},
			nil, http.StatusBadRequest,
		},
		{
			"invalid email",
			gin.H{"name": "Ravi", "email": "not-an-email", "password": "secret123"},
			nil, http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.svcErr != nil {
				authSvc.RegisterFunc = func(ctx context.Context, name, email, password, deviceID string) (*domain.User, error) {
					return nil, tt.svcErr
				}
			}
			h := NewAuthHandlers(authSvc)

			c, w := newAuthTestContext(t, tt.body)
			h.Register(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestResetPasswordHandlerMapsOTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{"expired code", domain.ErrOTPExpired, http.StatusBadRequest},
		{"wrong code", domain.ErrOTPInvalid, http.StatusBadRequest},
		{"too many attempts", domain.ErrOTPMaxAttempts, http.StatusTooManyRequests},
		{"unknown account", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			authSvc.ResetPasswordFunc = func(ctx context.Context, email, code, newPassword string) error {
				return tt.svcErr
			}
			h := NewAuthHandlers(authSvc)

			c, w := newAuthTestContext(t, gin.H{
				"email": "ravi@example.com", "otp": "123456", "new_password": "newpass1",
			})
			h.ResetPassword(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
