package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/recruitedge/outreach/internal/usecase"
)

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send returns the Resend message id.
func (s *ResendSender) Send(ctx context.Context, email usecase.OutgoingEmail) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Text:    email.Body,
	}
	if email.ReplyTo != "" {
		params.ReplyTo = email.ReplyTo
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}

	return sent.Id, nil
}
