package mocks

import (
	"context"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc             func(ctx context.Context, name, email, password, deviceID string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error)
	RefreshTokenFunc         func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc               func(ctx context.Context, sessionID string) error
	GetUserProfileFunc       func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc        func(ctx context.Context, userID uint, name, photo string) (*domain.User, error)
	ChangePasswordFunc       func(ctx context.Context, userID uint, currentPassword, newPassword string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	ResetPasswordFunc        func(ctx context.Context, email, code, newPassword string) error
	RequestEmailChangeFunc   func(ctx context.Context, userID uint, newEmail string) error
	ConfirmEmailChangeFunc   func(ctx context.Context, userID uint, newEmail, code string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password, deviceID string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, deviceID)
	}
	return &domain.User{ID: 1, Name: name, Email: email, Role: domain.RoleEmployee, DeviceID: deviceID}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req domain.AuthRequest) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: 1, Email: req.Email, Role: domain.RoleEmployee},
		AccessToken:  "access_token",
		RefreshToken: "refresh_token",
		SessionID:    "sess_1",
		ExpiresIn:    900,
	}, nil
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshToken)
	}
	return &domain.AuthResult{AccessToken: "access_token", ExpiresIn: 900}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, sessionID)
	}
	return nil
}

func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, name, photo string) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, name, photo)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, currentPassword, newPassword)
	}
	return nil
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, code, newPassword)
	}
	return nil
}

func (m *MockAuthService) RequestEmailChange(ctx context.Context, userID uint, newEmail string) error {
	if m.RequestEmailChangeFunc != nil {
		return m.RequestEmailChangeFunc(ctx, userID, newEmail)
	}
	return nil
}

func (m *MockAuthService) ConfirmEmailChange(ctx context.Context, userID uint, newEmail, code string) error {
	if m.ConfirmEmailChangeFunc != nil {
		return m.ConfirmEmailChangeFunc(ctx, userID, newEmail, code)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
