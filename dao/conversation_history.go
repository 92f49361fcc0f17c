package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cvntrieu/Group-3/models"
)

// ConversationHistoryDAO handles history-related database operations
type ConversationHistoryDAO struct {
	db *gorm.DB
}

func NewConversationHistoryDAO(db *gorm.DB) *ConversationHistoryDAO {
	return &ConversationHistoryDAO{db: db}
}

// CreateHistory creates the history row for a user. The unique index on
// user_id makes the second concurrent create for the same user fail; the
// caller is expected to re-read on error.
func (d *ConversationHistoryDAO) CreateHistory(userID uint64) (*models.ConversationHistory, error) {
	history := &models.ConversationHistory{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := d.db.Create(history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// GetHistoryByUserID retrieves a user's history. A missing history is a
// normal outcome and comes back as (nil, nil), not an error.
func (d *ConversationHistoryDAO) GetHistoryByUserID(userID uint64) (*models.ConversationHistory, error) {
	var history models.ConversationHistory
	if err := d.db.Where("user_id = ?", userID).First(&history).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

// TouchHistory bumps the history's updated_at after an append.
func (d *ConversationHistoryDAO) TouchHistory(id uuid.UUID) error {
	return d.db.Model(&models.ConversationHistory{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
