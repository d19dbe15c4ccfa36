package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender sends a single SMS to an already-normalized destination number.
type SMSSender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioSender sends SMS through the Twilio API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender constructs a TwilioSender. It returns nil unless account
// SID, auth token, and sender number are all configured; the dispatcher
// treats a nil sender as a disabled channel.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	if accountSID == "" || authToken == "" || from == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

// Send delivers an SMS. Twilio reports some failures in the response body
// rather than the error, so both are checked.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	if resp.ErrorCode != nil {
		msg := ""
		if resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		return fmt.Errorf("twilio send: code %d: %s", *resp.ErrorCode, msg)
	}
	return nil
}
