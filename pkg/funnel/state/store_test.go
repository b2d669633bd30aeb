package state

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/pkg/funnel/lead"

	"github.com/google/uuid"
)

type fakeRepo struct {
	rows    map[uuid.UUID]*entity.Conversation
	findErr error
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*entity.Conversation{}}
}

func (r *fakeRepo) Find(_ context.Context, id uuid.UUID) (*entity.Conversation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.rows[id], nil
}

func (r *fakeRepo) Save(_ context.Context, c *entity.Conversation) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.rows[c.Id] = c
	return nil
}

func newTestStore(repo *fakeRepo) *Store {
	return NewStore(repo, log.New(io.Discard, "", 0))
}

func TestReadUnknownIdReturnsEmptyState(t *testing.T) {
	store := newTestStore(newFakeRepo())
	id := uuid.New()

	conv, err := store.Read(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Id != id {
		t.Errorf("id = %v, want %v", conv.Id, id)
	}
	if conv.Lead.Status != lead.StatusNew || len(conv.History) != 0 {
		t.Errorf("not an empty state: %+v", conv)
	}
}

func TestReadDegradesOnStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("connection refused")
	store := newTestStore(repo)

	conv, err := store.Read(context.Background(), uuid.New())

	if conv == nil {
		t.Fatal("degraded read must still return a usable state")
	}
	var persistenceErr *dto.PersistenceError
	if !errors.As(err, &persistenceErr) {
		t.Errorf("want PersistenceError, got %v", err)
	}
}

func TestMergePersistsAndQualifies(t *testing.T) {
	repo := newFakeRepo()
	store := newTestStore(repo)
	conv := entity.NewConversation(uuid.New())

	name, contact, wealth := "Claire", "claire@x.fr", "moins de 100 000 euros"
	err := store.Merge(context.Background(), conv, lead.Partial{
		Name:          &name,
		Contact:       &contact,
		WealthBracket: &wealth,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.Lead.Status != lead.StatusQualified {
		t.Errorf("status = %q, want qualified", conv.Lead.Status)
	}
	if repo.rows[conv.Id] == nil {
		t.Error("merge did not persist")
	}
}

func TestMergeSaveFailureIsTyped(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("disk full")
	store := newTestStore(repo)

	err := store.Merge(context.Background(), entity.NewConversation(uuid.New()), lead.Partial{})

	var persistenceErr *dto.PersistenceError
	if !errors.As(err, &persistenceErr) {
		t.Errorf("want PersistenceError, got %v", err)
	}
}

func TestAppendHistoryKeepsOrder(t *testing.T) {
	repo := newFakeRepo()
	store := newTestStore(repo)
	conv := entity.NewConversation(uuid.New())
	ctx := context.Background()

	for _, q := range []string{"premier", "deuxième", "troisième"} {
		turn := entity.Turn{Question: q, Reply: "ok", CreatedAt: time.Now()}
		if err := store.AppendHistory(ctx, conv, turn); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(conv.History) != 3 {
		t.Fatalf("history length = %d", len(conv.History))
	}
	if conv.History[0].Question != "premier" || conv.History[2].Question != "troisième" {
		t.Errorf("history reordered: %+v", conv.History)
	}
}
