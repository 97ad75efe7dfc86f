package mocks

import "github.com/shreyanshTechz/attendance-backend/domain"

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID uint, role string, sessionID string) (string, error)
	GenerateRefreshTokenFunc func(userID uint, role string, sessionID string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateAccessToken(userID uint, role string, sessionID string) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, role, sessionID)
	}
	// Default behavior: opaque marker token
	return "access_token", nil
}

func (m *MockTokenService) GenerateRefreshToken(userID uint, role string, sessionID string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID, role, sessionID)
	}
	// Default behavior: opaque marker token
	return "refresh_token", nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
