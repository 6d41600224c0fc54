package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/queue"
)

func NewListLeadsUseCase(leadRepo entity.LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{LeadRepo: leadRepo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	leads, err := uc.LeadRepo.List(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeStorage,
			Message: "failed to load leads: " + err.Error(),
			Err:     err,
		}
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}

func NewUpdateLeadUseCase(leadRepo entity.LeadRepositoryInterface, publisher LeadEventPublisher) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		LeadRepo:  leadRepo,
		Publisher: publisher,
	}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	// 1. Normalise and check the status; notes are free text
	update := entity.LeadUpdate{Notes: input.Notes}

	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		if !entity.IsKnownLeadStatus(status) {
			return nil, newValidationError([]ValidationError{{
				Field:   "status",
				Message: "must be one of " + strings.Join(entity.LeadStatuses(), ", "),
			}})
		}
		update.Status = &status
	}

	// 2. Store (not found leaves the store untouched)
	lead, err := uc.LeadRepo.Update(ctx, input.ID, update)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return nil, &DomainError{
			Code:    CodeLeadNotFound,
			Message: fmt.Sprintf("lead %d not found", input.ID),
			Err:     err,
		}
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeStorage,
			Message: "failed to update lead: " + err.Error(),
			Err:     err,
		}
	}

	// 3. Event
	log.Printf("📝 Lead #%d updated (status: %s)", lead.ID, lead.Status)
	publish(ctx, uc.Publisher, queue.EventLeadUpdated, "", *lead)

	return lead, nil
}
