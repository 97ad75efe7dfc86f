package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	adminEmails map[string]bool
	accessTTL   time.Duration
	sessionTTL  time.Duration
}

// NewAuthService creates a new auth service. Accounts whose email appears in
// adminEmails are granted the admin role at registration and promoted on
// login if needed.
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	adminEmails []string,
	accessTTL, sessionTTL time.Duration,
) *AuthServiceImpl {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(e)] = true
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		adminEmails: admins,
		accessTTL:   accessTTL,
		sessionTTL:  sessionTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password, deviceID string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.RoleEmployee
	if s.adminEmails[strings.ToLower(email)] {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		DeviceID:     deviceID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login implements domain.AuthService. The first login binds the device
// fingerprint; later logins from a different device are refused.
func (s *AuthServiceImpl) Login(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	switch {
	case user.DeviceID == "":
		user.DeviceID = req.DeviceID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to bind device: %w", err)
		}
	case user.DeviceID != req.DeviceID:
		return nil, domain.ErrDeviceMismatch
	}

	// The allowlist wins over the stored role.
	if s.adminEmails[strings.ToLower(user.Email)] && user.Role != domain.RoleAdmin {
		user.Role = domain.RoleAdmin
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
	}

	session := &domain.Session{
		ID:        fmt.Sprintf("sess_%d_%d", user.ID, time.Now().UnixNano()),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// RefreshToken implements domain.AuthService
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.ExpiresAt.Before(time.Now()) {
		return nil, domain.ErrSessionExpired
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    session.ID,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Logout implements domain.AuthService
func (s *AuthServiceImpl) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, name, photo string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if photo != "" {
		user.Photo = photo
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// ChangePassword implements domain.AuthService
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, currentPassword) {
		return domain.ErrWrongPassword
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RequestPasswordReset implements domain.AuthService
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if _, err := s.otpSvc.Generate(ctx, email, user.ID); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// ResetPassword implements domain.AuthService
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	ok, err := s.otpSvc.Verify(ctx, email, code, user.ID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOTPInvalid
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// RequestEmailChange implements domain.AuthService. The OTP is keyed by and
// delivered to the prospective address.
func (s *AuthServiceImpl) RequestEmailChange(ctx context.Context, userID uint, newEmail string) error {
	if existing, err := s.userRepo.FindByEmail(ctx, newEmail); err == nil && existing != nil {
		return domain.ErrEmailInUse
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.otpSvc.Generate(ctx, newEmail, userID); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// ConfirmEmailChange implements domain.AuthService
func (s *AuthServiceImpl) ConfirmEmailChange(ctx context.Context, userID uint, newEmail, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := s.otpSvc.Verify(ctx, newEmail, code, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrOTPInvalid
	}

	user.Email = newEmail
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}
