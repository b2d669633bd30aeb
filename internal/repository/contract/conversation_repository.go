package contract

import (
	"context"

	"wealth-advisor-be/internal/entity"

	"github.com/google/uuid"
)

// ConversationRepository is the durable per-conversation store. Find returns
// nil (not an error) for an unknown id. Save upserts the whole row:
// the store has no compare-and-swap, so callers serialize writes per id
// themselves.
type ConversationRepository interface {
	Find(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	Save(ctx context.Context, conversation *entity.Conversation) error
}
