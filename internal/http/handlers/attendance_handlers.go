package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/config"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
)

// AttendanceHandlers handles attendance HTTP requests
type AttendanceHandlers struct {
	attendanceSvc domain.AttendanceService
	office        config.Office
}

// NewAttendanceHandlers creates new attendance handlers
func NewAttendanceHandlers(attendanceSvc domain.AttendanceService, office config.Office) *AttendanceHandlers {
	return &AttendanceHandlers{attendanceSvc: attendanceSvc, office: office}
}

// LocationRequest carries the caller's reported coordinates
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (r LocationRequest) coordinate() domain.Coordinate {
	return domain.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

func recordJSON(rec *domain.AttendanceRecord) gin.H {
	out := gin.H{
		"id":               rec.ID,
		"user_id":          rec.UserID,
		"status":           rec.Status,
		"latitude":         rec.Location.Latitude,
		"longitude":        rec.Location.Longitude,
		"ip_address":       rec.IPAddress,
		"login_time":       rec.LoginTime,
		"logout_time":      rec.LogoutTime,
		"duration_minutes": rec.DurationMinutes,
		"created_at":       rec.CreatedAt,
	}
	if rec.User != nil {
		out["user"] = gin.H{"id": rec.User.ID, "name": rec.User.Name, "email": rec.User.Email}
	}
	return out
}

func recordsJSON(recs []*domain.AttendanceRecord) []gin.H {
	out := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recordJSON(rec))
	}
	return out
}

func (h *AttendanceHandlers) handleGeoError(c *gin.Context, err error) {
	switch err {
	case domain.ErrInvalidCoordinate:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
	case domain.ErrLocationRejected:
		c.JSON(http.StatusForbidden, gin.H{"error": "Not within office location"})
	case domain.ErrNoActiveSession:
		c.JSON(http.StatusBadRequest, gin.H{"error": "No login found for today"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
	}
}

// Mark records a one-off presence ping
func (h *AttendanceHandlers) Mark(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.attendanceSvc.Mark(c.Request.Context(), userID, req.coordinate(), c.ClientIP())
	if err != nil {
		h.handleGeoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": recordJSON(rec)})
}

// Login opens today's presence window
func (h *AttendanceHandlers) Login(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.attendanceSvc.Login(c.Request.Context(), userID, req.coordinate(), c.ClientIP())
	if err != nil {
		h.handleGeoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message": "Logged in successfully",
		"record":  recordJSON(rec),
	}})
}

// Logout closes today's presence window
func (h *AttendanceHandlers) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.attendanceSvc.Logout(c.Request.Context(), userID, req.coordinate(), c.ClientIP())
	if err != nil {
		h.handleGeoError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"message":          "Logged out successfully",
		"duration_minutes": rec.DurationMinutes,
		"record":           recordJSON(rec),
	}})
}

// History returns the caller's attendance records, or another user's
// when an admin passes ?user_id=.
func (h *AttendanceHandlers) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if raw := c.Query("user_id"); raw != "" {
		role, _ := middleware.UserRole(c)
		if role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		userID = uint(parsed)
	}

	recs, err := h.attendanceSvc.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recordsJSON(recs)})
}

// All returns every attendance record. Admin only, enforced by policy.
func (h *AttendanceHandlers) All(c *gin.Context) {
	recs, err := h.attendanceSvc.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recordsJSON(recs)})
}

// OfficeConfig returns the fence parameters clients validate against.
func (h *AttendanceHandlers) OfficeConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"latitude":         h.office.Latitude,
		"longitude":        h.office.Longitude,
		"radius_km":        h.office.RadiusKm,
		"arrival_radius_m": h.office.ArrivalRadiusM,
	}})
}
