package memory

import (
	"context"
	"time"

	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CachedConversationRepository is a read-through cache in front of the
// durable store. The persistent store stays the single source of truth: the
// cache entry is dropped before every write and repopulated only from a
// successful read, and entries expire so a multi-instance deployment
// converges instead of serving stale process memory forever.
type CachedConversationRepository struct {
	inner contract.ConversationRepository
	cache *cache.Cache
}

func NewCachedConversationRepository(inner contract.ConversationRepository) contract.ConversationRepository {
	return &CachedConversationRepository{
		inner: inner,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *CachedConversationRepository) Find(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	if x, found := r.cache.Get(id.String()); found {
		return x.(*entity.Conversation), nil
	}

	conversation, err := r.inner.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if conversation != nil {
		r.cache.Set(id.String(), conversation, cache.DefaultExpiration)
	}
	return conversation, nil
}

func (r *CachedConversationRepository) Save(ctx context.Context, conversation *entity.Conversation) error {
	// Invalidate first so a failed write cannot leave a stale hit behind.
	r.cache.Delete(conversation.Id.String())

	if err := r.inner.Save(ctx, conversation); err != nil {
		return err
	}

	r.cache.Set(conversation.Id.String(), conversation, cache.DefaultExpiration)
	return nil
}
