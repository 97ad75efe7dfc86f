package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/config"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
	"github.com/shreyanshTechz/attendance-backend/internal/mocks"
)

var testOffice = config.Office{
	Latitude:       26.7428378,
	Longitude:      83.3797713,
	RadiusKm:       0.2,
	ArrivalRadiusM: 111,
}

func newAttendanceTestContext(t *testing.T, method, path string, body interface{}, userID uint, role string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != 0 {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxUserRole, role)
	}
	return c, w
}

func TestAttendanceLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantError  string
	}{
		{"logged in", nil, http.StatusOK, ""},
		{"outside fence", domain.ErrLocationRejected, http.StatusForbidden, "Not within office location"},
		{"bad coordinates", domain.ErrInvalidCoordinate, http.StatusBadRequest, "Invalid coordinates"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attSvc := mocks.NewMockAttendanceService()
			attSvc.LoginFunc = func(ctx context.Context, userID uint, loc domain.Coordinate, ip string) (*domain.AttendanceRecord, error) {
				if tt.svcErr != nil {
					return nil, tt.svcErr
				}
				now := time.Now()
				return &domain.AttendanceRecord{UserID: userID, Location: loc, Status: domain.AttendancePresent, LoginTime: &now}, nil
			}
			h := NewAttendanceHandlers(attSvc, testOffice)

			c, w := newAttendanceTestContext(t, "POST", "/attendance/login",
				gin.H{"latitude": 26.7428378, "longitude": 83.3797713}, 7, domain.RoleEmployee)
			h.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Contains(t, w.Body.String(), tt.wantError)
			}
		})
	}
}

func TestAttendanceLoginHandlerRequiresCoordinates(t *testing.T) {
	h := NewAttendanceHandlers(mocks.NewMockAttendanceService(), testOffice)

	c, w := newAttendanceTestContext(t, "POST", "/attendance/login", gin.H{"latitude": 26.74}, 7, domain.RoleEmployee)
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceLogoutHandlerNoSession(t *testing.T) {
	attSvc := mocks.NewMockAttendanceService()
	attSvc.LogoutFunc = func(ctx context.Context, userID uint, loc domain.Coordinate, ip string) (*domain.AttendanceRecord, error) {
		return nil, domain.ErrNoActiveSession
	}
	h := NewAttendanceHandlers(attSvc, testOffice)

	c, w := newAttendanceTestContext(t, "POST", "/attendance/logout",
		gin.H{"latitude": 26.7428378, "longitude": 83.3797713}, 7, domain.RoleEmployee)
	h.Logout(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No login found for today")
}

func TestAttendanceLogoutHandlerReturnsDuration(t *testing.T) {
	attSvc := mocks.NewMockAttendanceService()
	attSvc.LogoutFunc = func(ctx context.Context, userID uint, loc domain.Coordinate, ip string) (*domain.AttendanceRecord, error) {
		login := time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC)
		logout := login.Add(8*time.Hour + 30*time.Minute)
		return &domain.AttendanceRecord{
			UserID: userID, Status: domain.AttendancePresent,
			LoginTime: &login, LogoutTime: &logout, DurationMinutes: 510,
		}, nil
	}
	h := NewAttendanceHandlers(attSvc, testOffice)

	c, w := newAttendanceTestContext(t, "POST", "/attendance/logout",
		gin.H{"latitude": 26.7428378, "longitude": 83.3797713}, 7, domain.RoleEmployee)
	h.Logout(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			DurationMinutes int `json:"duration_minutes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 510, resp.Data.DurationMinutes)
}

func TestAttendanceHistoryHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		role       string
		wantStatus int
		wantUser   uint
	}{
		{"own history", "/attendance/history", domain.RoleEmployee, http.StatusOK, 7},
		{"admin reads another user", "/attendance/history?user_id=9", domain.RoleAdmin, http.StatusOK, 9},
		{"employee cannot read others", "/attendance/history?user_id=9", domain.RoleEmployee, http.StatusForbidden, 0},
		{"bad user_id", "/attendance/history?user_id=abc", domain.RoleAdmin, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attSvc := mocks.NewMockAttendanceService()
			var gotUser uint
			attSvc.HistoryFunc = func(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
				gotUser = userID
				return nil, nil
			}
			h := NewAttendanceHandlers(attSvc, testOffice)

			c, w := newAttendanceTestContext(t, "GET", tt.path, nil, 7, tt.role)
			h.History(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantUser, gotUser)
			}
		})
	}
}

func TestOfficeConfigHandler(t *testing.T) {
	h := NewAttendanceHandlers(mocks.NewMockAttendanceService(), testOffice)

	c, w := newAttendanceTestContext(t, "GET", "/attendance/office-config", nil, 0, "")
	h.OfficeConfig(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Latitude       float64 `json:"latitude"`
			Longitude      float64 `json:"longitude"`
			RadiusKm       float64 `json:"radius_km"`
			ArrivalRadiusM float64 `json:"arrival_radius_m"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testOffice.Latitude, resp.Data.Latitude)
	assert.Equal(t, testOffice.RadiusKm, resp.Data.RadiusKm)
}
