package events

import "time"

const (
	TypeLeadQualified = "LEAD_QUALIFIED"
	TypeTurnDegraded  = "TURN_DEGRADED"
)

// NewLeadQualified is emitted exactly once per conversation, when the lead
// record first reaches qualified status.
func NewLeadQualified(conversationId, name, contact, wealthBracket string) Event {
	return BaseEvent{
		Type: TypeLeadQualified,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"name":            name,
			"contact":         contact,
			"wealth_bracket":  wealthBracket,
		},
		OccurredAt: time.Now(),
	}
}

// NewTurnDegraded reports an absorbed pipeline failure (extraction,
// generation or persistence) that the end user never saw.
func NewTurnDegraded(conversationId, kind, detail string) Event {
	return BaseEvent{
		Type: TypeTurnDegraded,
		Data: map[string]interface{}{
			"conversation_id": conversationId,
			"kind":            kind,
			"detail":          detail,
		},
		OccurredAt: time.Now(),
	}
}
