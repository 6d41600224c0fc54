package usecase

import (
	"context"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/queue"
)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type OutgoingEmail struct {
	To      string
	Subject string
	Body    string
	ReplyTo string
}

type EmailService interface {
	Send(ctx context.Context, email OutgoingEmail) (string, error)
}

type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error
}

type GenerateEmailUseCase struct {
	Generator TextGenerator
	Strategy  ParseStrategy
}

type SendEmailUseCase struct {
	Mailer    EmailService
	LeadRepo  entity.LeadRepositoryInterface
	Publisher LeadEventPublisher
}

type OutreachUseCase struct {
	Generate *GenerateEmailUseCase
	Send     *SendEmailUseCase
}

type ListLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

type UpdateLeadUseCase struct {
	LeadRepo  entity.LeadRepositoryInterface
	Publisher LeadEventPublisher
}
