package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Conversation is the persistent row backing one conversation id. Lead data,
// QCM progress and history live in JSON columns: the shape evolves with the
// funnel and the store only ever reads/writes the row whole.
type Conversation struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LeadData            datatypes.JSON `gorm:"type:jsonb"`
	QcmResponses        datatypes.JSON `gorm:"type:jsonb"`
	ConversationHistory datatypes.JSON `gorm:"type:jsonb"`
	Status              string         `gorm:"type:text;not null;default:'new';index"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}
