package usecase

import (
	"context"
	"log"
	"strings"
)

func NewGenerateEmailUseCase(generator TextGenerator, strategy ParseStrategy) *GenerateEmailUseCase {
	return &GenerateEmailUseCase{
		Generator: generator,
		Strategy:  strategy,
	}
}

func (uc *GenerateEmailUseCase) Execute(ctx context.Context, input GenerateEmailInput) (*GenerateEmailOutput, error) {
	// 1. Validate
	validationErrors := ValidateAthleteInfo(input.Athlete)
	validationErrors = append(validationErrors, ValidateCoachInfo(input.Coach, false)...)
	if len(validationErrors) > 0 {
		return nil, newValidationError(validationErrors)
	}

	// 2. Prompt; the format instruction follows the parse strategy
	prompt := BuildPrompt(*input.Athlete, *input.Coach, uc.Strategy)

	// 3. One generator call, no retries
	raw, err := uc.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeGeneration,
			Message: "email generation failed: " + err.Error(),
			Err:     err,
		}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, &TechnicalError{
			Code:    CodeGeneration,
			Message: "email generation failed: empty response from generator",
		}
	}

	// 4. Parse. A malformed response degrades, it never errors
	email := ParseResponse(uc.Strategy, raw)
	if email.Subject == "" || email.Body == "" || email.Subject == FallbackSubject {
		log.Printf("⚠️ Generator output did not match the %s format, using degraded draft", uc.Strategy)
	}

	return &GenerateEmailOutput{
		Subject: email.Subject,
		Body:    email.Body,
	}, nil
}
