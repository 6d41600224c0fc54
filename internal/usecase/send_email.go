package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/queue"
)

func NewSendEmailUseCase(
	mailer EmailService,
	leadRepo entity.LeadRepositoryInterface,
	publisher LeadEventPublisher,
) *SendEmailUseCase {
	return &SendEmailUseCase{
		Mailer:    mailer,
		LeadRepo:  leadRepo,
		Publisher: publisher,
	}
}

// Execute delivers an already generated email and records the lead. The
// lead is appended only after the provider accepted the message.
func (uc *SendEmailUseCase) Execute(ctx context.Context, input SendEmailInput) (*SendEmailOutput, error) {
	// 1. Validate
	if validationErrors := ValidateSendEmailInput(input); len(validationErrors) > 0 {
		return nil, newValidationError(validationErrors)
	}

	attemptID := input.AttemptID
	if attemptID == "" {
		attemptID = uuid.New().String()
	}

	// 2. Send (reply-to: override > athlete email)
	messageID, err := uc.Mailer.Send(ctx, OutgoingEmail{
		To:      strings.TrimSpace(input.ToEmail),
		Subject: input.Subject,
		Body:    input.Body,
		ReplyTo: ResolveReplyTo(input.ReplyTo, input.Athlete),
	})
	if err != nil {
		log.Printf("❌ [%s] Failed to send email to %s: %v", attemptID, input.ToEmail, err)
		return nil, &TechnicalError{
			Code:    CodeMail,
			Message: "failed to send email: " + err.Error(),
			Err:     err,
		}
	}

	// 3. Record the lead, only after the provider accepted the message
	lead, err := uc.LeadRepo.Append(ctx, entity.LeadDraft{
		AthleteName: input.Athlete.Name,
		CoachName:   input.Coach.CoachName,
		College:     input.Coach.College,
		CoachEmail:  strings.TrimSpace(input.ToEmail),
		Status:      entity.LeadStatusSent,
	})
	if err != nil {
		log.Printf("⚠️ [%s] Email %s was sent but the lead could not be recorded: %v", attemptID, messageID, err)
		return nil, &TechnicalError{
			Code:    CodeStorage,
			Message: "email sent but failed to record lead: " + err.Error(),
			Err:     err,
		}
	}

	// 4. Event (best effort, never fails the send)
	log.Printf("✅ [%s] Email sent to %s (%s), lead #%d recorded", attemptID, lead.CoachName, lead.College, lead.ID)
	publish(ctx, uc.Publisher, queue.EventLeadCreated, attemptID, *lead)

	return &SendEmailOutput{
		AttemptID: attemptID,
		Success:   true,
		LeadID:    lead.ID,
		MessageID: messageID,
	}, nil
}

// ResolveReplyTo picks the reply-to address: an explicit override always
// wins, the athlete's own address is the default.
func ResolveReplyTo(override string, athlete *entity.AthleteInfo) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if athlete != nil {
		return strings.TrimSpace(athlete.Email)
	}
	return ""
}

func publish(ctx context.Context, publisher LeadEventPublisher, event, attemptID string, lead entity.Lead) {
	if publisher == nil {
		return
	}

	err := publisher.PublishLeadEvent(ctx, queue.LeadEvent{
		Event:      event,
		AttemptID:  attemptID,
		Lead:       lead,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("⚠️ Failed to publish %s for lead #%d: %v", event, lead.ID, err)
	}
}
