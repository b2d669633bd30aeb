package dto

import "time"

// FunnelEventMessage is the wire shape published on the in-process event bus
// and consumed by the notification consumer.
type FunnelEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
