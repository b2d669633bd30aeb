package state

import (
	"context"
	"log"

	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/repository/contract"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/locking"

	"github.com/google/uuid"
)

// Store owns the durable conversation state: read with empty defaults for
// unknown ids, fill-missing merge of extracted facts, append-only history.
// Read/Merge/AppendHistory for one id run back-to-back within a turn, so the
// whole turn holds the per-id lock (Acquire/Release) around them.
type Store struct {
	repo   contract.ConversationRepository
	locks  *locking.KeyedMutex
	logger *log.Logger
}

func NewStore(repo contract.ConversationRepository, logger *log.Logger) *Store {
	return &Store{
		repo:   repo,
		locks:  locking.NewKeyedMutex(),
		logger: logger,
	}
}

func (s *Store) Acquire(id uuid.UUID) {
	s.locks.Lock(id.String())
}

func (s *Store) Release(id uuid.UUID) {
	s.locks.Unlock(id.String())
}

// Read loads the conversation, degrading a store failure to the empty state:
// the bot forgets rather than crashes, and the caller gets the typed error
// to report alongside the usable default.
func (s *Store) Read(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := s.repo.Find(ctx, id)
	if err != nil {
		s.logger.Printf("[STATE] read failed for %s, serving empty state: %v", id, err)
		return entity.NewConversation(id), &dto.PersistenceError{Op: "read", Cause: err}
	}
	if conversation == nil {
		return entity.NewConversation(id), nil
	}
	return conversation, nil
}

// Merge folds extracted facts into the lead record (fill-missing-only) and
// persists the whole conversation row.
func (s *Store) Merge(ctx context.Context, conversation *entity.Conversation, partial lead.Partial) error {
	conversation.Lead = lead.Merge(conversation.Lead, partial)
	conversation.Status = conversation.Lead.Status

	if err := s.repo.Save(ctx, conversation); err != nil {
		s.logger.Printf("[STATE] merge persist failed for %s: %v", conversation.Id, err)
		return &dto.PersistenceError{Op: "merge", Cause: err}
	}
	return nil
}

// AppendHistory appends one turn and persists. History is never reordered
// and never evicted; unbounded growth is a known limitation of the design.
func (s *Store) AppendHistory(ctx context.Context, conversation *entity.Conversation, turn entity.Turn) error {
	conversation.History = append(conversation.History, turn)

	if err := s.repo.Save(ctx, conversation); err != nil {
		s.logger.Printf("[STATE] history persist failed for %s: %v", conversation.Id, err)
		return &dto.PersistenceError{Op: "append_history", Cause: err}
	}
	return nil
}
