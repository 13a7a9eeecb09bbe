package services

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/ravishankar2114/banking-simulator/internal/config"
)

// TwilioSender delivers SMS messages through the Twilio REST API
type TwilioSender struct {
	client     *twilio.RestClient
	fromNumber string
}

// NewTwilioSender creates an SMS sender from OTP configuration
func NewTwilioSender(otpConfig *config.OTPConfig) SMSSenderInterface {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: otpConfig.TwilioAccountSID,
		Password: otpConfig.TwilioAuthToken,
	})

	return &TwilioSender{
		client:     client,
		fromNumber: otpConfig.TwilioFromNumber,
	}
}

// SendSMS sends a single message to the given phone number
func (ts *TwilioSender) SendSMS(toNumber, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(ts.fromNumber)
	params.SetBody(body)

	if _, err := ts.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	return nil
}
