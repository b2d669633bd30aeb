package implementation

import (
	"context"
	"errors"

	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/mapper"
	"wealth-advisor-be/internal/model"
	"wealth-advisor-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) Find(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var m model.Conversation
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *ConversationRepositoryImpl) Save(ctx context.Context, conversation *entity.Conversation) error {
	m, err := r.mapper.ToModel(conversation)
	if err != nil {
		return err
	}

	// Insert-if-absent plus full-row update. Last write wins on the whole
	// row; per-id serialization happens above this layer.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
}
