package retrieval

import (
	"context"
	"log"

	"wealth-advisor-be/internal/dto"
	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/pkg/embedding"
)

// Index is a nearest-neighbor search over the pre-built knowledge
// embeddings. Implementations: the flat on-disk index (pkg/retrieval/flatindex)
// and the pgvector-backed repository.
type Index interface {
	Search(ctx context.Context, vector []float32, k int) ([]entity.KnowledgeDocument, error)
}

// Retriever grounds replies: embeds the query and returns the k most similar
// knowledge documents, most relevant first. Read-only, no retries; a failed
// embedding or search surfaces as a RetrievalError rather than an empty
// result, so the caller never mistakes an outage for "nothing relevant".
type Retriever struct {
	embedder embedding.EmbeddingProvider
	index    Index
	logger   *log.Logger
}

func NewRetriever(embedder embedding.EmbeddingProvider, index Index, logger *log.Logger) *Retriever {
	return &Retriever{
		embedder: embedder,
		index:    index,
		logger:   logger,
	}
}

func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]entity.KnowledgeDocument, error) {
	if k <= 0 {
		k = 3
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, &dto.RetrievalError{Cause: err}
	}

	docs, err := r.index.Search(ctx, vector, k)
	if err != nil {
		return nil, &dto.RetrievalError{Cause: err}
	}

	r.logger.Printf("[RETRIEVAL] %d documents for query (k=%d)", len(docs), k)
	return docs, nil
}
