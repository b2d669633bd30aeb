package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/entity"
)

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vector, s.err
}

type stubIndex struct {
	docs  []entity.KnowledgeDocument
	err   error
	lastK int
}

func (s *stubIndex) Search(_ context.Context, _ []float32, k int) ([]entity.KnowledgeDocument, error) {
	s.lastK = k
	return s.docs, s.err
}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRetrieveReturnsDocuments(t *testing.T) {
	index := &stubIndex{docs: []entity.KnowledgeDocument{
		{Title: "PER", Content: "...", URL: "https://x.fr/per"},
	}}
	r := NewRetriever(&stubEmbedder{vector: []float32{1}}, index, quiet())

	docs, err := r.Retrieve(context.Background(), "comment défiscaliser ?", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "PER" {
		t.Errorf("unexpected docs: %v", docs)
	}
	if index.lastK != 3 {
		t.Errorf("k = %d, want 3", index.lastK)
	}
}

func TestRetrieveDefaultsK(t *testing.T) {
	index := &stubIndex{}
	r := NewRetriever(&stubEmbedder{vector: []float32{1}}, index, quiet())

	if _, err := r.Retrieve(context.Background(), "q", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.lastK != 3 {
		t.Errorf("k = %d, want default 3", index.lastK)
	}
}

func TestRetrieveWrapsEmbeddingFailure(t *testing.T) {
	r := NewRetriever(&stubEmbedder{err: errors.New("quota exceeded")}, &stubIndex{}, quiet())

	_, err := r.Retrieve(context.Background(), "q", 3)

	var retrievalErr *dto.RetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Errorf("want RetrievalError, got %v", err)
	}
}

func TestRetrieveWrapsIndexFailure(t *testing.T) {
	index := &stubIndex{err: errors.New("connection reset")}
	r := NewRetriever(&stubEmbedder{vector: []float32{1}}, index, quiet())

	_, err := r.Retrieve(context.Background(), "q", 3)

	var retrievalErr *dto.RetrievalError
	if !errors.As(err, &retrievalErr) {
		t.Errorf("want RetrievalError, got %v", err)
	}
}
