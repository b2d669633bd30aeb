package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// KnowledgeEmbedding holds one pre-computed knowledge-base document and its
// embedding. DocumentId is the integer position assigned at index-build
// time; rows are written by the index build and read-only while serving.
type KnowledgeEmbedding struct {
	DocumentId     int             `gorm:"primaryKey;autoIncrement:false"`
	Title          string          `gorm:"type:text;not null"`
	Content        string          `gorm:"type:text;not null"`
	Url            string          `gorm:"type:text"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-ada-002 dimension
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
}

func (KnowledgeEmbedding) TableName() string {
	return "knowledge_embeddings"
}
