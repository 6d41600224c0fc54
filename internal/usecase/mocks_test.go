package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recruitedge/outreach/internal/entity"
	"github.com/recruitedge/outreach/internal/infra/queue"
	"github.com/recruitedge/outreach/internal/usecase"
)

// MockGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(ctx context.Context, email usecase.OutgoingEmail) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Append(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, id int, update entity.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishLeadEvent(ctx context.Context, event queue.LeadEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func validAthlete() *entity.AthleteInfo {
	return &entity.AthleteInfo{
		Name:     "Jordan Miles",
		Email:    "jordan@example.com",
		Sport:    "Basketball",
		Position: "Point Guard",
		School:   "Central High",
		GradYear: "2026",
		GPA:      "3.8",
		Stats:    "18 ppg, 7 apg, 2 spg",
	}
}

func validCoach() *entity.CoachInfo {
	return &entity.CoachInfo{
		CoachName: "Coach Smith",
		College:   "State University",
		Email:     "smith@state.edu",
	}
}
