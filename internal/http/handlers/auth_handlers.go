package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyanshTechz/attendance-backend/domain"
	"github.com/shreyanshTechz/attendance-backend/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	DeviceID string `json:"device_id"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

// RefreshRequest represents token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// ChangePasswordRequest represents password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

// ForgotPasswordRequest represents a password reset OTP request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest represents OTP-verified password reset request
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// EmailChangeRequest represents an email change OTP request
type EmailChangeRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

// ConfirmEmailChangeRequest represents OTP-verified email change request
type ConfirmEmailChangeRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required,len=6"`
}

func userJSON(user *domain.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"photo": user.Photo,
	}
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.DeviceID)
	if err != nil {
		if err == domain.ErrUserAlreadyExists {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"message": "User created successfully",
		"user_id": user.ID,
	}})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), domain.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		case domain.ErrDeviceMismatch:
			c.JSON(http.StatusForbidden, gin.H{"error": "Login not allowed from this device. Please use your registered device."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"token_type":    "Bearer",
		"expires_in":    result.ExpiresIn,
		"user":          userJSON(result.User),
	}})
}

// Refresh handles token refresh
func (h *AuthHandlers) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case domain.ErrTokenInvalid, domain.ErrTokenExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		case domain.ErrSessionNotFound, domain.ErrSessionExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"access_token": result.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   result.ExpiresIn,
	}})
}

// Logout invalidates the caller's session
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, ok := c.Get(middleware.CtxSessionID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active session"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// Me returns the caller's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := h.authSvc.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": userJSON(user)})
}

// UpdateProfile updates the caller's name and photo
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, req.Name, req.Photo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": userJSON(user)})
}

// ChangePassword rotates the caller's password after re-authentication
func (h *AuthHandlers) ChangePassword(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch err {
		case domain.ErrWrongPassword:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Password changed successfully"}})
}

// ForgotPassword issues a password reset OTP
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "OTP sent successfully"}})
}

// ResetPassword verifies the OTP and sets the new password
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case domain.ErrOTPInvalid, domain.ErrOTPNotFound, domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		case domain.ErrOTPMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum OTP attempts exceeded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Password reset successfully"}})
}

// RequestEmailChange sends an OTP to the prospective address
func (h *AuthHandlers) RequestEmailChange(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req EmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authSvc.RequestEmailChange(c.Request.Context(), userID, req.NewEmail); err != nil {
		switch err {
		case domain.ErrEmailInUse:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "OTP sent to new email"}})
}

// ConfirmEmailChange verifies the OTP and commits the new address
func (h *AuthHandlers) ConfirmEmailChange(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req ConfirmEmailChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authSvc.ConfirmEmailChange(c.Request.Context(), userID, req.NewEmail, req.OTP)
	if err != nil {
		switch err {
		case domain.ErrOTPInvalid, domain.ErrOTPNotFound, domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OTP"})
		case domain.ErrOTPMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum OTP attempts exceeded"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Email updated successfully"}})
}
