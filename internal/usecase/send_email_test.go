package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/queue"
	"github.com/recruitedge/outreach/internal/usecase"
)

func sendInput() usecase.SendEmailInput {
	return usecase.SendEmailInput{
		ToEmail: "smith@state.edu",
		Subject: "Jordan Miles - 2026 PG",
		Body:    "Coach Smith, ...",
		Athlete: validAthlete(),
		Coach:   validCoach(),
	}
}

func TestSendEmailSuccessRecordsLead(t *testing.T) {
	ctx := context.Background()
	mailer := new(MockEmailService)
	repo := new(MockLeadRepository)
	publisher := new(MockPublisher)

	mailer.On("Send", ctx, usecase.OutgoingEmail{
		To:      "smith@state.edu",
		Subject: "Jordan Miles - 2026 PG",
		Body:    "Coach Smith, ...",
		ReplyTo: "jordan@example.com",
	}).Return("msg_1", nil)
	repo.On("Append", ctx, entity.LeadDraft{
		AthleteName: "Jordan Miles",
		CoachName:   "Coach Smith",
		College:     "State University",
		CoachEmail:  "smith@state.edu",
		Status:      entity.LeadStatusSent,
	}).Return(&entity.Lead{ID: 1, CoachName: "Coach Smith", College: "State University", Status: "sent"}, nil)
	publisher.On("PublishLeadEvent", ctx, mock.MatchedBy(func(e queue.LeadEvent) bool {
		return e.Event == queue.EventLeadCreated && e.Lead.ID == 1 && e.AttemptID != ""
	})).Return(nil)

	uc := usecase.NewSendEmailUseCase(mailer, repo, publisher)
	out, err := uc.Execute(ctx, sendInput())

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.LeadID)
	assert.Equal(t, "msg_1", out.MessageID)
	assert.NotEmpty(t, out.AttemptID)
	mailer.AssertExpectations(t)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSendEmailMailFailureRecordsNothing(t *testing.T) {
	ctx := context.Background()
	mailer := new(MockEmailService)
	repo := new(MockLeadRepository)
	mailer.On("Send", ctx, mock.Anything).Return("", errors.New("422 invalid from"))

	uc := usecase.NewSendEmailUseCase(mailer, repo, nil)
	out, err := uc.Execute(ctx, sendInput())

	assert.Nil(t, out)
	require.Error(t, err)
	assert.Equal(t, usecase.CodeMail, usecase.ErrorCode(err))
	assert.Contains(t, err.Error(), "422 invalid from")
	repo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestSendEmailPublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	mailer := new(MockEmailService)
	repo := new(MockLeadRepository)
	publisher := new(MockPublisher)
	mailer.On("Send", ctx, mock.Anything).Return("msg_2", nil)
	repo.On("Append", ctx, mock.Anything).Return(&entity.Lead{ID: 2, Status: "sent"}, nil)
	publisher.On("PublishLeadEvent", ctx, mock.Anything).Return(errors.New("channel closed"))

	out, err := usecase.NewSendEmailUseCase(mailer, repo, publisher).Execute(ctx, sendInput())

	require.NoError(t, err)
	assert.Equal(t, 2, out.LeadID)
}

func TestSendEmailStorageFailure(t *testing.T) {
	ctx := context.Background()
	mailer := new(MockEmailService)
	repo := new(MockLeadRepository)
	mailer.On("Send", ctx, mock.Anything).Return("msg_3", nil)
	repo.On("Append", ctx, mock.Anything).Return(nil, errors.New("disk full"))

	_, err := usecase.NewSendEmailUseCase(mailer, repo, nil).Execute(ctx, sendInput())

	assert.Equal(t, usecase.CodeStorage, usecase.ErrorCode(err))
}

func TestSendEmailValidation(t *testing.T) {
	mailer := new(MockEmailService)
	input := sendInput()
	input.ToEmail = "not-an-email"
	input.Subject = ""

	_, err := usecase.NewSendEmailUseCase(mailer, new(MockLeadRepository), nil).Execute(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
	assert.Contains(t, err.Error(), "to_email")
	assert.Contains(t, err.Error(), "subject")
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestResolveReplyTo(t *testing.T) {
	a := validAthlete()

	assert.Equal(t, "parent@example.com", usecase.ResolveReplyTo("parent@example.com", a))
	assert.Equal(t, "jordan@example.com", usecase.ResolveReplyTo("  ", a))
	assert.Equal(t, "", usecase.ResolveReplyTo("", &entity.AthleteInfo{Name: "No Email"}))
	assert.Equal(t, "", usecase.ResolveReplyTo("", nil))
}
