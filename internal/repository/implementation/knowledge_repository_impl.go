package implementation

import (
	"context"

	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/mapper"
	"wealth-advisor-be/internal/model"
	"wealth-advisor-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewKnowledgeRepository(db *gorm.DB) contract.KnowledgeRepository {
	return &KnowledgeRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

// Search runs nearest-neighbor over the pre-built embeddings using the
// pgvector cosine distance operator: embedding_value <=> query
func (r *KnowledgeRepositoryImpl) Search(ctx context.Context, vector []float32, k int) ([]entity.KnowledgeDocument, error) {
	var rows []*model.KnowledgeEmbedding

	err := r.db.WithContext(ctx).
		Model(&model.KnowledgeEmbedding{}).
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(vector))).
		Limit(k).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	docs := make([]entity.KnowledgeDocument, len(rows))
	for i, row := range rows {
		docs[i] = r.mapper.KnowledgeToEntity(row)
	}
	return docs, nil
}

func (r *KnowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.KnowledgeEmbedding{}).Count(&count).Error
	return count, err
}
