package dao

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cvntrieu/Group-3/models"
)

// MessageDAO handles message-related database operations
type MessageDAO struct {
	db *gorm.DB
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{db: db}
}

// CreateMessages inserts a batch of messages in one statement, preserving
// the slice order for identifier assignment. The batch is atomic: either
// every message is stored or none is.
func (d *MessageDAO) CreateMessages(messages []models.Message) ([]models.Message, error) {
	if len(messages) == 0 {
		return messages, nil
	}
	if err := d.db.Create(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetMessagesByHistoryID retrieves all messages of a history ascending by
// created_at, id as tie-break.
func (d *MessageDAO) GetMessagesByHistoryID(historyID uuid.UUID) ([]models.Message, error) {
	var messages []models.Message
	if err := d.db.Where("conversation_history_id = ?", historyID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetLastMessagesByHistoryID retrieves the most recent limit messages of a
// history. They come back descending; the logic layer reverses them so the
// caller always sees ascending order.
func (d *MessageDAO) GetLastMessagesByHistoryID(historyID uuid.UUID, limit int) ([]models.Message, error) {
	var messages []models.Message
	if err := d.db.Where("conversation_history_id = ?", historyID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
