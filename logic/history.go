package logic

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cvntrieu/Group-3/dao"
	"github.com/cvntrieu/Group-3/models"
)

// NewMessage is one entry of an append batch.
type NewMessage struct {
	SenderType models.SenderType
	Content    string
	CreatedAt  time.Time
}

// HistoryLogic owns the conversation aggregate: exactly one history per
// user, append-only messages, retrieval always ascending by created_at.
type HistoryLogic struct {
	historyDAO *dao.ConversationHistoryDAO
	messageDAO *dao.MessageDAO

	// Per-user critical section around check-then-create. The unique index
	// on user_id is the authoritative guard (it also holds across
	// processes); the mutex just keeps same-user requests in this process
	// off the conflict path.
	userLocks sync.Map
}

func NewHistoryLogic(
	historyDAO *dao.ConversationHistoryDAO,
	messageDAO *dao.MessageDAO,
) *HistoryLogic {
	return &HistoryLogic{
		historyDAO: historyDAO,
		messageDAO: messageDAO,
	}
}

// GetHistory looks up a user's history. A missing history is a soft miss:
// found is false and err is nil.
func (l *HistoryLogic) GetHistory(userID uint64) (history *models.ConversationHistory, found bool, err error) {
	history, err = l.historyDAO.GetHistoryByUserID(userID)
	if err != nil {
		return nil, false, err
	}
	return history, history != nil, nil
}

// EnsureHistory returns the user's history, creating it on first use.
// Concurrent calls for the same user yield exactly one history: a lost
// create race surfaces as a unique-constraint error and is resolved by
// re-reading the winner's row.
func (l *HistoryLogic) EnsureHistory(userID uint64) (*models.ConversationHistory, error) {
	mu := l.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	history, err := l.historyDAO.GetHistoryByUserID(userID)
	if err != nil {
		return nil, err
	}
	if history != nil {
		return history, nil
	}

	history, createErr := l.historyDAO.CreateHistory(userID)
	if createErr == nil {
		return history, nil
	}

	// Another process may have won the race; the unique index rejected our
	// insert, so the winner's row must exist now.
	history, err = l.historyDAO.GetHistoryByUserID(userID)
	if err == nil && history != nil {
		return history, nil
	}
	return nil, createErr
}

func (l *HistoryLogic) lockFor(userID uint64) *sync.Mutex {
	mu, _ := l.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// AppendMessages validates the batch, lazily creates the user's history
// and stores the messages in one insert. Submission order is preserved in
// storage, but retrieval order is always by created_at (id tie-break), not
// by submission order.
func (l *HistoryLogic) AppendMessages(userID uint64, batch []NewMessage) ([]models.Message, error) {
	for _, m := range batch {
		if !m.SenderType.IsValid() {
			return nil, ErrInvalidSenderType
		}
	}

	history, err := l.EnsureHistory(userID)
	if err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0, len(batch))
	for _, m := range batch {
		createdAt := m.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		messages = append(messages, models.Message{
			ConversationHistoryID: history.ID,
			SenderType:            m.SenderType,
			Content:               m.Content,
			CreatedAt:             createdAt,
		})
	}

	stored, err := l.messageDAO.CreateMessages(messages)
	if err != nil {
		return nil, err
	}

	if err := l.historyDAO.TouchHistory(history.ID); err != nil {
		logrus.WithError(err).WithField("history_id", history.ID).
			Warn("failed to touch conversation history")
	}
	return stored, nil
}

// ListMessages returns a history's messages ascending by created_at. A
// positive limit keeps only the last limit messages (the most recent
// ones), still ascending: tail semantics, not head.
func (l *HistoryLogic) ListMessages(history *models.ConversationHistory, limit int) ([]models.Message, error) {
	if limit <= 0 {
		return l.messageDAO.GetMessagesByHistoryID(history.ID)
	}
	messages, err := l.messageDAO.GetLastMessagesByHistoryID(history.ID, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
