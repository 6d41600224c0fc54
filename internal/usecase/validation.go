package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/recruitedge/outreach/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateAthleteInfo(a *entity.AthleteInfo) []ValidationError {
	if a == nil {
		return []ValidationError{{"athlete", "is required"}}
	}

	var errors []ValidationError
	required := []struct {
		field string
		value string
	}{
		{"athlete.name", a.Name},
		{"athlete.sport", a.Sport},
		{"athlete.position", a.Position},
		{"athlete.school", a.School},
		{"athlete.grad_year", a.GradYear},
		{"athlete.gpa", a.GPA},
		{"athlete.stats", a.Stats},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errors = append(errors, ValidationError{r.field, "is required"})
		}
	}

	if strings.TrimSpace(a.Email) != "" && !isValidEmail(a.Email) {
		errors = append(errors, ValidationError{"athlete.email", "is invalid"})
	}

	return errors
}

// ValidateCoachInfo checks the coach block. The coach's address is only
// mandatory when the email is actually going out.
func ValidateCoachInfo(c *entity.CoachInfo, requireEmail bool) []ValidationError {
	if c == nil {
		return []ValidationError{{"coach", "is required"}}
	}

	var errors []ValidationError
	if strings.TrimSpace(c.CoachName) == "" {
		errors = append(errors, ValidationError{"coach.coach_name", "is required"})
	}
	if strings.TrimSpace(c.College) == "" {
		errors = append(errors, ValidationError{"coach.college", "is required"})
	}

	switch {
	case strings.TrimSpace(c.Email) == "" && requireEmail:
		errors = append(errors, ValidationError{"coach.email", "is required"})
	case strings.TrimSpace(c.Email) != "" && !isValidEmail(c.Email):
		errors = append(errors, ValidationError{"coach.email", "is invalid"})
	}

	return errors
}

func ValidateSendEmailInput(input SendEmailInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.ToEmail) == "" {
		errors = append(errors, ValidationError{"to_email", "is required"})
	} else if !isValidEmail(input.ToEmail) {
		errors = append(errors, ValidationError{"to_email", "is invalid"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}
	if strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"body", "is required"})
	}
	errors = append(errors, ValidateReplyTo(input.ReplyTo)...)

	if input.Athlete == nil || strings.TrimSpace(input.Athlete.Name) == "" {
		errors = append(errors, ValidationError{"athlete.name", "is required"})
	}
	errors = append(errors, ValidateCoachInfo(input.Coach, false)...)

	return errors
}

// ValidateReplyTo accepts an empty override, which falls back to the
// athlete's email.
func ValidateReplyTo(replyTo string) []ValidationError {
	if strings.TrimSpace(replyTo) != "" && !isValidEmail(replyTo) {
		return []ValidationError{{"reply_to", "is invalid"}}
	}
	return nil
}

func isValidEmail(address string) bool {
	_, err := mail.ParseAddress(strings.TrimSpace(address))
	return err == nil
}

func newValidationError(validationErrors []ValidationError) *DomainError {
	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}
