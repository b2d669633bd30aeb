package contract

import (
	"context"

	"wealth-advisor-be/internal/entity"
)

// KnowledgeRepository is the pgvector-backed knowledge index. It satisfies
// retrieval.Index so the retriever can run on either this or the flat
// on-disk index.
type KnowledgeRepository interface {
	Search(ctx context.Context, vector []float32, k int) ([]entity.KnowledgeDocument, error)
	Count(ctx context.Context) (int64, error)
}
