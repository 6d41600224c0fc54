package usecase

import (
	"context"

	"github.com/google/uuid"
)

func NewOutreachUseCase(generate *GenerateEmailUseCase, send *SendEmailUseCase) *OutreachUseCase {
	return &OutreachUseCase{
		Generate: generate,
		Send:     send,
	}
}

// Execute runs one attempt: Composed -> Generated -> (Sent | SendFailed).
// Generation and validation errors are returned. A failed send is not: it
// is reported in the output so the caller still gets the draft.
func (uc *OutreachUseCase) Execute(ctx context.Context, input OutreachInput) (*OutreachOutput, error) {
	// 1. Everything the send needs is checked before paying for generation
	if input.Send {
		validationErrors := ValidateAthleteInfo(input.Athlete)
		validationErrors = append(validationErrors, ValidateCoachInfo(input.Coach, true)...)
		validationErrors = append(validationErrors, ValidateReplyTo(input.ReplyTo)...)
		if len(validationErrors) > 0 {
			return nil, newValidationError(validationErrors)
		}
	}

	// 2. Generate + parse
	generated, err := uc.Generate.Execute(ctx, GenerateEmailInput{
		Athlete: input.Athlete,
		Coach:   input.Coach,
	})
	if err != nil {
		return nil, err
	}

	output := &OutreachOutput{
		AttemptID: uuid.New().String(),
		Subject:   generated.Subject,
		Body:      generated.Body,
	}
	if !input.Send {
		return output, nil
	}

	// 3. Send; only a delivered email becomes a lead
	output.SendAttempted = true
	sent, err := uc.Send.Execute(ctx, SendEmailInput{
		AttemptID: output.AttemptID,
		ToEmail:   input.Coach.Email,
		Subject:   generated.Subject,
		Body:      generated.Body,
		ReplyTo:   input.ReplyTo,
		Athlete:   input.Athlete,
		Coach:     input.Coach,
	})
	if err != nil {
		output.Error = err.Error()
		return output, nil
	}

	output.Success = true
	output.LeadID = sent.LeadID
	return output, nil
}
