package flatindex

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"wealth-advisor-be/internal/entity"
)

// Index is the static on-disk variant of the knowledge index: a metadata
// file holding the ordered documents and a parallel vectors file holding one
// embedding row per document, both produced at index-build time. Everything
// is loaded once at startup and searched brute-force with cosine similarity,
// which is exact and plenty for a knowledge base of this size.
type Index struct {
	documents []entity.KnowledgeDocument
	vectors   [][]float32
}

// Load reads metadata.json (ordered []{title,content,url}) and vectors.json
// (parallel [][]float32). Row i of the vectors file embeds document i.
func Load(metadataPath, vectorsPath string) (*Index, error) {
	metaBytes, err := os.ReadFile(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var documents []entity.KnowledgeDocument
	if err := json.Unmarshal(metaBytes, &documents); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	vecBytes, err := os.ReadFile(vectorsPath)
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}

	var vectors [][]float32
	if err := json.Unmarshal(vecBytes, &vectors); err != nil {
		return nil, fmt.Errorf("parse vectors: %w", err)
	}

	if len(vectors) != len(documents) {
		return nil, fmt.Errorf("index mismatch: %d vectors for %d documents", len(vectors), len(documents))
	}

	return &Index{documents: documents, vectors: vectors}, nil
}

func New(documents []entity.KnowledgeDocument, vectors [][]float32) (*Index, error) {
	if len(vectors) != len(documents) {
		return nil, fmt.Errorf("index mismatch: %d vectors for %d documents", len(vectors), len(documents))
	}
	return &Index{documents: documents, vectors: vectors}, nil
}

func (idx *Index) Len() int {
	return len(idx.documents)
}

// Search returns up to k documents ordered by descending cosine similarity.
func (idx *Index) Search(_ context.Context, vector []float32, k int) ([]entity.KnowledgeDocument, error) {
	if len(idx.vectors) == 0 {
		return nil, nil
	}

	type scored struct {
		id    int
		score float64
	}

	scores := make([]scored, 0, len(idx.vectors))
	for i, row := range idx.vectors {
		scores = append(scores, scored{id: i, score: cosineSimilarity(vector, row)})
	}

	sort.Slice(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	if k > len(scores) {
		k = len(scores)
	}

	docs := make([]entity.KnowledgeDocument, 0, k)
	for _, s := range scores[:k] {
		docs = append(docs, idx.documents[s.id])
	}
	return docs, nil
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
