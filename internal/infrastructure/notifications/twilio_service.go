package notifications

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// TwilioServiceImpl implements domain.NotificationService. SMS goes through
// Twilio; email delivery is logged when no provider is configured so OTP
// flows stay testable in development.
type TwilioServiceImpl struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, fromNumber string) domain.NotificationService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioServiceImpl{
		client:     client,
		fromNumber: fromNumber,
	}
}

// SendSMS implements domain.NotificationService
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	if t.fromNumber == "" {
		log.Printf("[MOCK SMS] to=%s message=%q", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.fromNumber)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	log.Printf("[MOCK EMAIL] to=%s subject=%q body=%q", to, subject, body)
	return nil
}
