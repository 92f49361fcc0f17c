package models

import (
	"time"

	"github.com/google/uuid"
)

// SenderType classifies who produced a message.
type SenderType int16

const (
	SenderUser SenderType = 0
	SenderBot  SenderType = 1
)

// IsValid reports whether t is a known sender classification.
func (t SenderType) IsValid() bool {
	return t == SenderUser || t == SenderBot
}

// Message belongs to exactly one ConversationHistory; deleting the history
// cascades to its messages. CreatedAt defines the total order within a
// history, with the auto-incremented ID as the stable tie-break.
type Message struct {
	ID                    uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationHistoryID uuid.UUID  `gorm:"type:uuid;not null;index" json:"conversation_history_id"`
	SenderType            SenderType `gorm:"not null" json:"sender_type"`
	Content               string     `gorm:"not null" json:"content"`
	CreatedAt             time.Time  `json:"created_at"`
}
