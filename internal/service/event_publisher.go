package service

import (
	"context"

	"vendor-marketplace-be/internal/pkg/logger"
	"vendor-marketplace-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const EventsTopic = "marketplace.events"

// ExternalPublisher forwards events off-process (NATS JetStream in production).
type ExternalPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IEventPublisher never fails the caller; delivery problems are logged.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event)
}

type eventPublisher struct {
	bus      message.Publisher
	topic    string
	external ExternalPublisher
	logger   logger.ILogger
}

// NewEventPublisher fans events out to the in-process bus and, when external is non-nil, to the external broker.
func NewEventPublisher(bus message.Publisher, topic string, external ExternalPublisher, log logger.ILogger) IEventPublisher {
	return &eventPublisher{
		bus:      bus,
		topic:    topic,
		external: external,
		logger:   log,
	}
}

func (p *eventPublisher) Publish(ctx context.Context, event events.Event) {
	payload, err := events.Marshal(event)
	if err != nil {
		p.logger.Error("EVENTS", "Failed to encode event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	if p.bus != nil {
		msg := message.NewMessage(watermill.NewUUID(), payload)
		msg.Metadata.Set("type", event.EventType())
		if err := p.bus.Publish(p.topic, msg); err != nil {
			p.logger.Error("EVENTS", "Failed to publish event in-process", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}

	if p.external != nil {
		if err := p.external.Publish(ctx, event); err != nil {
			p.logger.Warn("EVENTS", "Failed to publish event to broker", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}
