package mail

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/recruitedge/outreach/internal/usecase"
)

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// Send delivers a plain text email over SMTP and returns the Message-ID it
// stamped on the message.
func (s *SMTPSender) Send(ctx context.Context, email usecase.OutgoingEmail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m, messageID := s.buildMessage(email)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("SMTP send failed: %w", err)
	}

	return messageID, nil
}

func (s *SMTPSender) buildMessage(email usecase.OutgoingEmail) (*gomail.Message, string) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), senderDomain(s.From))

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetHeader("Message-ID", messageID)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}
	m.SetBody("text/plain", email.Body)

	return m, messageID
}

func senderDomain(from string) string {
	addr, err := mail.ParseAddress(from)
	if err != nil {
		return "localhost"
	}
	if i := strings.LastIndex(addr.Address, "@"); i >= 0 && i < len(addr.Address)-1 {
		return addr.Address[i+1:]
	}
	return "localhost"
}
