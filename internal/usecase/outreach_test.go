package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/database"
	"github.com/recruitedge/outreach/internal/usecase"
)

func newWorkflow(t *testing.T, gen *MockGenerator, mailer *MockEmailService) (*usecase.OutreachUseCase, *database.JSONLeadRepository) {
	t.Helper()
	repo := database.NewJSONLeadRepository(filepath.Join(t.TempDir(), "leads.json"))
	generate := usecase.NewGenerateEmailUseCase(gen, usecase.StrategyDelimiter)
	send := usecase.NewSendEmailUseCase(mailer, repo, nil)
	return usecase.NewOutreachUseCase(generate, send), repo
}

func TestOutreachSendFailureCreatesNoLead(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("SUBJECT: S\nBODY:\nB", nil)
	mailer := new(MockEmailService)
	mailer.On("Send", ctx, mock.Anything).Return("", errors.New("provider down"))
	uc, repo := newWorkflow(t, gen, mailer)

	out, err := uc.Execute(ctx, usecase.OutreachInput{Athlete: validAthlete(), Coach: validCoach(), Send: true})

	require.NoError(t, err)
	assert.True(t, out.SendAttempted)
	assert.False(t, out.Success)
	assert.Equal(t, "S", out.Subject)
	assert.Equal(t, "B", out.Body)
	assert.Contains(t, out.Error, "provider down")
	assert.Zero(t, out.LeadID)

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestOutreachSendSuccessCreatesOneLead(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("SUBJECT: S\nBODY:\nB", nil)
	mailer := new(MockEmailService)
	mailer.On("Send", ctx, usecase.OutgoingEmail{
		To:      "smith@state.edu",
		Subject: "S",
		Body:    "B",
		ReplyTo: "override@example.com",
	}).Return("msg_1", nil)
	uc, repo := newWorkflow(t, gen, mailer)

	out, err := uc.Execute(ctx, usecase.OutreachInput{
		Athlete: validAthlete(),
		Coach:   validCoach(),
		Send:    true,
		ReplyTo: "override@example.com",
	})

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, 1, out.LeadID)
	assert.Empty(t, out.Error)

	leads, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, entity.LeadStatusSent, leads[0].Status)
	assert.Equal(t, "", leads[0].Notes)
	assert.Equal(t, "Jordan Miles", leads[0].AthleteName)
	assert.Equal(t, "Coach Smith", leads[0].CoachName)
	assert.Equal(t, "State University", leads[0].College)
	assert.Equal(t, "smith@state.edu", leads[0].CoachEmail)
	mailer.AssertExpectations(t)
}

func TestOutreachGenerationFailureStopsBeforeSend(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("", errors.New("401 invalid x-api-key"))
	mailer := new(MockEmailService)
	uc, repo := newWorkflow(t, gen, mailer)

	out, err := uc.Execute(ctx, usecase.OutreachInput{Athlete: validAthlete(), Coach: validCoach(), Send: true})

	assert.Nil(t, out)
	assert.Equal(t, usecase.CodeGeneration, usecase.ErrorCode(err))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	leads, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestOutreachWithoutSend(t *testing.T) {
	ctx := context.Background()
	gen := new(MockGenerator)
	gen.On("Generate", ctx, mock.Anything).Return("SUBJECT: S\nBODY:\nB", nil)
	mailer := new(MockEmailService)
	uc, _ := newWorkflow(t, gen, mailer)

	c := validCoach()
	c.Email = ""
	out, err := uc.Execute(ctx, usecase.OutreachInput{Athlete: validAthlete(), Coach: c})

	require.NoError(t, err)
	assert.False(t, out.SendAttempted)
	assert.NotEmpty(t, out.AttemptID)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestOutreachSendRequiresCoachEmail(t *testing.T) {
	gen := new(MockGenerator)
	uc, _ := newWorkflow(t, gen, new(MockEmailService))

	c := validCoach()
	c.Email = ""
	_, err := uc.Execute(context.Background(), usecase.OutreachInput{Athlete: validAthlete(), Coach: c, Send: true})

	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestOutreachSendRejectsInvalidReplyToBeforeGenerating(t *testing.T) {
	gen := new(MockGenerator)
	mailer := new(MockEmailService)
	uc, repo := newWorkflow(t, gen, mailer)

	_, err := uc.Execute(context.Background(), usecase.OutreachInput{
		Athlete: validAthlete(),
		Coach:   validCoach(),
		Send:    true,
		ReplyTo: "not-an-address",
	})

	assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
	assert.Contains(t, err.Error(), "reply_to")
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)

	leads, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}
