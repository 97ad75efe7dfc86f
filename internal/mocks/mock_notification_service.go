package mocks

import "github.com/shreyanshTechz/attendance-backend/domain"

// MockNotificationService implements domain.NotificationService interface for testing
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	// SentEmails records every SendEmail call for assertions.
	SentEmails []struct{ To, Subject, Body string }
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: success
	return nil
}

func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	m.SentEmails = append(m.SentEmails, struct{ To, Subject, Body string }{to, subject, body})
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
