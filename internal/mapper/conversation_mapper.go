package mapper

import (
	"encoding/json"
	"time"

	"wealth-advisor-be/internal/entity"
	"wealth-advisor-be/internal/model"
	"wealth-advisor-be/pkg/funnel/lead"
	"wealth-advisor-be/pkg/funnel/qcm"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) (*entity.Conversation, error) {
	if c == nil {
		return nil, nil
	}

	record := lead.NewRecord()
	if len(c.LeadData) > 0 {
		if err := json.Unmarshal(c.LeadData, &record); err != nil {
			return nil, err
		}
	}

	progress := qcm.NewProgress()
	if len(c.QcmResponses) > 0 {
		if err := json.Unmarshal(c.QcmResponses, &progress); err != nil {
			return nil, err
		}
	}

	var history []entity.Turn
	if len(c.ConversationHistory) > 0 {
		if err := json.Unmarshal(c.ConversationHistory, &history); err != nil {
			return nil, err
		}
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conversation{
		Id:        c.Id,
		Lead:      record,
		Qcm:       progress,
		History:   history,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) (*model.Conversation, error) {
	if c == nil {
		return nil, nil
	}

	leadData, err := json.Marshal(c.Lead)
	if err != nil {
		return nil, err
	}
	qcmData, err := json.Marshal(c.Qcm)
	if err != nil {
		return nil, err
	}
	historyData, err := json.Marshal(c.History)
	if err != nil {
		return nil, err
	}

	return &model.Conversation{
		Id:                  c.Id,
		LeadData:            leadData,
		QcmResponses:        qcmData,
		ConversationHistory: historyData,
		Status:              c.Status,
		CreatedAt:           c.CreatedAt,
	}, nil
}

func (m *ConversationMapper) KnowledgeToEntity(k *model.KnowledgeEmbedding) entity.KnowledgeDocument {
	return entity.KnowledgeDocument{
		Title:   k.Title,
		Content: k.Content,
		URL:     k.Url,
	}
}
