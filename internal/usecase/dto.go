package usecase

import "github.com/recruitedge/outreach/internal/entity"

type GenerateEmailInput struct {
	Athlete *entity.AthleteInfo `json:"athlete"`
	Coach   *entity.CoachInfo   `json:"coach"`
}

type GenerateEmailOutput struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type SendEmailInput struct {
	AttemptID string              `json:"attempt_id,omitempty"`
	ToEmail   string              `json:"to_email"`
	Subject   string              `json:"subject"`
	Body      string              `json:"body"`
	ReplyTo   string              `json:"reply_to"`
	Athlete   *entity.AthleteInfo `json:"athlete"`
	Coach     *entity.CoachInfo   `json:"coach"`
}

type SendEmailOutput struct {
	AttemptID string `json:"attempt_id"`
	Success   bool   `json:"success"`
	LeadID    int    `json:"lead_id,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

type OutreachInput struct {
	Athlete *entity.AthleteInfo `json:"athlete"`
	Coach   *entity.CoachInfo   `json:"coach"`
	Send    bool                `json:"send"`
	ReplyTo string              `json:"reply_to"`
}

type OutreachOutput struct {
	AttemptID     string `json:"attempt_id"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	SendAttempted bool   `json:"send_attempted"`
	Success       bool   `json:"success"`
	LeadID        int    `json:"lead_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

type UpdateLeadInput struct {
	ID     int     `json:"id"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
