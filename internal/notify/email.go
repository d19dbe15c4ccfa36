package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// EmailSender sends a single plain-text email. Implementations report errors
// to the caller; the dispatcher decides what to do with them.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResendSender sends email through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender constructs a ResendSender. It returns nil when no API key
// is configured; the dispatcher treats a nil sender as a disabled channel.
func NewResendSender(apiKey, from string) *ResendSender {
	if apiKey == "" {
		return nil
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from}
}

// Send delivers body as HTML (newlines become <br>) to a single recipient.
func (s *ResendSender) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    strings.ReplaceAll(body, "\n", "<br>\n"),
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
