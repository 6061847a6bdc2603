package events

import (
	"encoding/json"
	"time"
)

const (
	SubscriptionCreated             = "SUBSCRIPTION_CREATED"
	SubscriptionPaymentProofUpdated = "SUBSCRIPTION_PAYMENT_PROOF_UPDATED"
	SubscriptionActivated           = "SUBSCRIPTION_ACTIVATED"
	SubscriptionRejected            = "SUBSCRIPTION_REJECTED"
	SubscriptionExpired             = "SUBSCRIPTION_EXPIRED"
	BookingQuotaConsumed            = "BOOKING_QUOTA_CONSUMED"
	BookingStatusChanged            = "BOOKING_STATUS_CHANGED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SUBSCRIPTION_ACTIVATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

type envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurredAt"`
}

// Marshal encodes an event into the wire envelope shared by every transport.
func Marshal(e Event) ([]byte, error) {
	return json.Marshal(envelope{Type: e.EventType(), Data: e.Payload(), OccurredAt: e.Timestamp()})
}

// Unmarshal decodes a wire envelope back into a BaseEvent.
func Unmarshal(data []byte) (BaseEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}
