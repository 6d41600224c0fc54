package entity

import (
	"context"
	"errors"
)

const (
	LeadStatusSent       = "sent"
	LeadStatusReplied    = "replied"
	LeadStatusNoResponse = "no_response"
	LeadStatusRejected   = "rejected"
)

// DateSentLayout is how date_sent is stored: local time, minute precision.
const DateSentLayout = "2006-01-02 15:04"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrLeadStatusChanged = errors.New("lead status changed")
)

// Lead is one outreach attempt that reached the coach's inbox.
type Lead struct {
	ID          int    `json:"id"`
	AthleteName string `json:"athlete_name"`
	CoachName   string `json:"coach_name"`
	College     string `json:"college"`
	CoachEmail  string `json:"coach_email"`
	Status      string `json:"status"` // sent, replied, no_response, rejected
	DateSent    string `json:"date_sent"`
	Notes       string `json:"notes"`
}

// LeadDraft carries the fields captured at send time. The store fills in
// id, date_sent and notes.
type LeadDraft struct {
	AthleteName string
	CoachName   string
	College     string
	CoachEmail  string
	Status      string
}

// LeadUpdate holds the only mutable fields. A nil pointer leaves the
// stored value alone. When ExpectStatus is set the update only applies if
// the stored status still matches, checked atomically by the store;
// otherwise it fails with ErrLeadStatusChanged.
type LeadUpdate struct {
	Status       *string
	Notes        *string
	ExpectStatus *string
}

func LeadStatuses() []string {
	return []string{LeadStatusSent, LeadStatusReplied, LeadStatusNoResponse, LeadStatusRejected}
}

func IsKnownLeadStatus(status string) bool {
	for _, s := range LeadStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

type LeadRepositoryInterface interface {
	List(ctx context.Context) ([]Lead, error)
	Append(ctx context.Context, draft LeadDraft) (*Lead, error)
	Update(ctx context.Context, id int, update LeadUpdate) (*Lead, error)
}
