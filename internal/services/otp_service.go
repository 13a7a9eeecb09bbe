package services

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"

	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
)

const otpDigits = 6

// OTPService issues and verifies one-time sign-in codes. Codes are stateless:
// the caller holds the expected value for the duration of the challenge.
type OTPService struct {
	sender   SMSSenderInterface
	bankName string
	logger   *slog.Logger
	metrics  MetricsRecorderInterface
}

// NewOTPService creates a new OTP service
func NewOTPService(sender SMSSenderInterface, bankName string, logger *slog.Logger, metrics MetricsRecorderInterface) OTPServiceInterface {
	return &OTPService{
		sender:   sender,
		bankName: bankName,
		logger:   logger,
		metrics:  metrics,
	}
}

// Issue generates a 6-digit code and delivers it to the given phone number.
// The code is returned so the caller can verify the customer's answer.
func (os *OTPService) Issue(phoneNumber string) (string, error) {
	code, err := generateOTPCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	body := fmt.Sprintf("Your %s one-time code is %s. Do not share it with anyone.", os.bankName, code)
	if err := os.sender.SendSMS(phoneNumber, body); err != nil {
		os.logger.Error("OTP delivery failed", "error", err)
		os.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "otp_delivery_failed"})
		return "", &apperrors.DeliveryFailedError{Cause: err}
	}

	os.logger.Info("OTP issued")
	os.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "otp_issued"})
	return code, nil
}

// Verify compares the expected code against the supplied one in constant time
func (os *OTPService) Verify(expected, supplied string) bool {
	if expected == "" || len(expected) != len(supplied) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}

// generateOTPCode draws a uniform 6-digit code from crypto/rand
func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
