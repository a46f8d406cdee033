// Package messaging publishes order domain events to RabbitMQ or Kafka.
// Both brokers carry the same JSON document produced by EncodeEvent.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/order"
)

const contentType = "application/json"

// EventMessage is the wire form of an order.Event.
type EventMessage struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	RestaurantID   string    `json:"restaurantId"`
	ClientID       string    `json:"clientId"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	Status         string    `json:"status"`
	Total          string    `json:"total"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func newEventMessage(event order.Event) EventMessage {
	msg := EventMessage{
		ID:           event.ID.String(),
		Type:         string(event.Type),
		OrderID:      event.OrderID.String(),
		RestaurantID: event.RestaurantID.String(),
		ClientID:     event.ClientID.String(),
		Status:       event.Status.String(),
		Total:        event.Total.StringFixed(2),
		OccurredAt:   event.OccurredAt.UTC(),
	}
	if event.PreviousStatus != order.Unknown {
		msg.PreviousStatus = event.PreviousStatus.String()
	}
	return msg
}

// EncodeEvent renders event as JSON.
func EncodeEvent(event order.Event) ([]byte, error) {
	body, err := json.Marshal(newEventMessage(event))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}
	return body, nil
}

// DecodeEvent parses a document written by EncodeEvent.
func DecodeEvent(body []byte) (EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return EventMessage{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return msg, nil
}
