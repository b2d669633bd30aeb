package memory

import (
	"context"
	"errors"
	"testing"

	"wealth-advisor-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	rows    map[uuid.UUID]*entity.Conversation
	finds   int
	saves   int
	saveErr error
}

func newCountingRepo() *countingRepo {
	return &countingRepo{rows: map[uuid.UUID]*entity.Conversation{}}
}

func (r *countingRepo) Find(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	r.finds++
	return r.rows[id], nil
}

func (r *countingRepo) Save(_ context.Context, c *entity.Conversation) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.rows[c.Id] = c
	return nil
}

func TestFindServesSecondReadFromCache(t *testing.T) {
	inner := newCountingRepo()
	id := uuid.New()
	inner.rows[id] = entity.NewConversation(id)

	repo := NewCachedConversationRepository(inner)
	ctx := context.Background()

	_, err := repo.Find(ctx, id)
	require.NoError(t, err)
	_, err = repo.Find(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.finds)
}

func TestFindMissIsNotCached(t *testing.T) {
	inner := newCountingRepo()
	repo := NewCachedConversationRepository(inner)
	ctx := context.Background()
	id := uuid.New()

	conv, err := repo.Find(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, conv)

	// The id gets created elsewhere; the next read must hit the store.
	inner.rows[id] = entity.NewConversation(id)
	conv, err = repo.Find(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, conv)
}

func TestSaveWritesThroughAndRefreshesCache(t *testing.T) {
	inner := newCountingRepo()
	repo := NewCachedConversationRepository(inner)
	ctx := context.Background()

	conv := entity.NewConversation(uuid.New())
	require.NoError(t, repo.Save(ctx, conv))
	assert.Equal(t, 1, inner.saves)

	// Read comes from cache, the inner store is untouched.
	got, err := repo.Find(ctx, conv.Id)
	require.NoError(t, err)
	assert.Same(t, conv, got)
	assert.Equal(t, 0, inner.finds)
}

func TestFailedSaveInvalidatesCache(t *testing.T) {
	inner := newCountingRepo()
	repo := NewCachedConversationRepository(inner)
	ctx := context.Background()

	conv := entity.NewConversation(uuid.New())
	require.NoError(t, repo.Save(ctx, conv))

	inner.saveErr = errors.New("disk full")
	err := repo.Save(ctx, conv)
	require.Error(t, err)

	// The stale entry must be gone: the next read goes to the store.
	_, err = repo.Find(ctx, conv.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.finds)
}
