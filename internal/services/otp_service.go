package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shreyanshTechz/attendance-backend/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Challenges are keyed by email address; password reset uses the account
// email, email change uses the prospective address.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) *OTPServiceImpl {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Generate implements domain.OTPService
func (s *OTPServiceImpl) Generate(ctx context.Context, email string, userID uint) (*domain.OTPRequest, error) {
	otpKey := fmt.Sprintf("otp:%s:%d", email, userID)
	resendKey := fmt.Sprintf("otp:res:%s", email)
	attemptsKey := fmt.Sprintf("otp:att:%s:%d", email, userID)

	if canResend, waitTime, _ := s.CanResend(ctx, email); !canResend {
		return nil, fmt.Errorf("please wait %d seconds before requesting new OTP: %w", waitTime, domain.ErrOTPResendLimit)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey, code, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return nil, fmt.Errorf("failed to set resend throttle: %w", err)
	}

	otpReq := &domain.OTPRequest{
		Email:     email,
		Code:      code,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.config.TTL),
		Attempts:  0,
	}

	subject := "Attendance App verification code"
	body := fmt.Sprintf("Your OTP is %s. It expires in %d minutes. If you didn't request this, ignore this email.",
		code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, subject, body); err != nil {
		// Delivery failed, so the challenge must not stay redeemable.
		s.redisClient.Del(ctx, otpKey, attemptsKey, resendKey)
		return nil, fmt.Errorf("failed to send OTP email: %w", err)
	}

	return otpReq, nil
}

// Verify implements domain.OTPService
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string, userID uint) (bool, error) {
	otpKey := fmt.Sprintf("otp:%s:%d", email, userID)
	attemptsKey := fmt.Sprintf("otp:att:%s:%d", email, userID)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, otpKey, attemptsKey)
		return false, domain.ErrOTPMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, otpKey).Result()
	if err == redis.Nil {
		return false, domain.ErrOTPNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	if storedCode != code {
		return false, domain.ErrOTPInvalid
	}

	// Redeemed challenges are single use.
	s.redisClient.Del(ctx, otpKey, attemptsKey)
	return true, nil
}

// CanResend implements domain.OTPService
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("otp:res:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}
	if ttl <= 0 {
		return true, 0, nil
	}
	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)
	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits), nil
}
