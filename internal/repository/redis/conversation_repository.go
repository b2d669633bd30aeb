package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ConversationRepository is the key-value backend: the whole conversation is
// one JSON blob under conversation:<id>. Same last-write-wins semantics as
// the SQL row store, useful when no Postgres is available.
type ConversationRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewConversationRepository(client *goredis.Client, ttl time.Duration) contract.ConversationRepository {
	return &ConversationRepository{
		client: client,
		ttl:    ttl,
	}
}

func key(id uuid.UUID) string {
	return "conversation:" + id.String()
}

func (r *ConversationRepository) Find(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	data, err := r.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var conversation entity.Conversation
	if err := json.Unmarshal(data, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepository) Save(ctx context.Context, conversation *entity.Conversation) error {
	data, err := json.Marshal(conversation)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(conversation.Id), data, r.ttl).Err()
}
