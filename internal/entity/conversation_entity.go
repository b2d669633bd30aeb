package entity

import (
	"time"

	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/qcm"

	"github.com/google/uuid"
)

// Turn is one question/reply exchange. History is append-only and never
// reordered; it doubles as model context window and audit trail.
type Turn struct {
	Question  string    `json:"question"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

type Conversation struct {
	Id        uuid.UUID
	Lead      lead.Record
	Qcm       qcm.Progress
	History   []Turn
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewConversation returns the empty state served for an unknown id.
func NewConversation(id uuid.UUID) *Conversation {
	return &Conversation{
		Id:     id,
		Lead:   lead.NewRecord(),
		Qcm:    qcm.NewProgress(),
		Status: lead.StatusNew,
	}
}

// RecentTurns returns the trailing window used as model context.
func (c *Conversation) RecentTurns(n int) []Turn {
	if len(c.History) <= n {
		return c.History
	}
	return c.History[len(c.History)-n:]
}
