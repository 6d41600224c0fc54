package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/recruitedge/outreach/internal/entity"
)

const (
	EventLeadCreated = "lead.created"
	EventLeadUpdated = "lead.updated"
)

type LeadEvent struct {
	Event      string      `json:"event"`
	AttemptID  string      `json:"attempt_id,omitempty"`
	Lead       entity.Lead `json:"lead"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Channel is the part of *amqp.Channel the producer needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Producer struct {
	Ch Channel
}

func NewProducer(ch Channel) *Producer {
	return &Producer{Ch: ch}
}

func (p *Producer) PublishLeadEvent(ctx context.Context, event LeadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode lead event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         event.Event,
			Timestamp:    event.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
