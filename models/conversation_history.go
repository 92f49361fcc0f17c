package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationHistory is the aggregate root for a user's messages. The
// unique index on UserID enforces at most one history per user at the
// persistence layer; histories are created lazily on the first append and
// never by the user directly.
type ConversationHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `gorm:"foreignKey:ConversationHistoryID;constraint:OnDelete:CASCADE" json:"-"`
}
