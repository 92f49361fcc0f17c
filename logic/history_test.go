package logic

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cvntrieu/Group-3/dao"
	"github.com/cvntrieu/Group-3/models"
)

func newTestHistoryLogic(t *testing.T) *HistoryLogic {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ConversationHistory{}, &models.Message{}))
	return NewHistoryLogic(dao.NewConversationHistoryDAO(db), dao.NewMessageDAO(db))
}

func TestGetHistorySoftMiss(t *testing.T) {
	l := newTestHistoryLogic(t)

	history, found, err := l.GetHistory(1)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, history)
}

func TestEnsureHistoryCreatesOnce(t *testing.T) {
	l := newTestHistoryLogic(t)

	first, err := l.EnsureHistory(1)
	require.NoError(t, err)
	second, err := l.EnsureHistory(1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	history, found, err := l.GetHistory(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.ID, history.ID)
}

func TestEnsureHistoryConcurrentSingleCreation(t *testing.T) {
	l := newTestHistoryLogic(t)

	const callers = 16
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			history, err := l.EnsureHistory(7)
			if err != nil {
				t.Errorf("EnsureHistory failed: %v", err)
				return
			}
			ids[i] = history.ID.String()
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Equal(t, ids[0], ids[i], "all concurrent callers must observe the same history")
	}
}

func TestAppendMessagesRetrievedByTimestampNotSubmissionOrder(t *testing.T) {
	l := newTestHistoryLogic(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := l.AppendMessages(1, []NewMessage{
		{SenderType: models.SenderBot, Content: "hi", CreatedAt: base.Add(5 * time.Second)},
		{SenderType: models.SenderUser, Content: "hey", CreatedAt: base.Add(2 * time.Second)},
	})
	require.NoError(t, err)

	history, found, err := l.GetHistory(1)
	require.NoError(t, err)
	require.True(t, found)

	messages, err := l.ListMessages(history, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hey", messages[0].Content)
	assert.Equal(t, models.SenderUser, messages[0].SenderType)
	assert.Equal(t, "hi", messages[1].Content)
	assert.Equal(t, models.SenderBot, messages[1].SenderType)
}

func TestAppendMessagesTieBreakIsInsertionOrder(t *testing.T) {
	l := newTestHistoryLogic(t)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := l.AppendMessages(1, []NewMessage{
		{SenderType: models.SenderUser, Content: "first", CreatedAt: ts},
		{SenderType: models.SenderBot, Content: "second", CreatedAt: ts},
	})
	require.NoError(t, err)

	history, _, err := l.GetHistory(1)
	require.NoError(t, err)

	messages, err := l.ListMessages(history, 0)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Less(t, messages[0].ID, messages[1].ID)
}

func TestListMessagesTailLimit(t *testing.T) {
	l := newTestHistoryLogic(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := l.AppendMessages(1, []NewMessage{
		{SenderType: models.SenderUser, Content: "m1", CreatedAt: base},
		{SenderType: models.SenderBot, Content: "m2", CreatedAt: base.Add(time.Second)},
		{SenderType: models.SenderUser, Content: "m3", CreatedAt: base.Add(2 * time.Second)},
	})
	require.NoError(t, err)

	history, _, err := l.GetHistory(1)
	require.NoError(t, err)

	messages, err := l.ListMessages(history, 1)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "m3", messages[0].Content, "limit=1 keeps the most recent message")

	messages, err = l.ListMessages(history, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "m2", messages[0].Content)
	assert.Equal(t, "m3", messages[1].Content)

	messages, err = l.ListMessages(history, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 3, "limit beyond the tail returns everything")
}

func TestAppendMessagesRejectsInvalidSenderType(t *testing.T) {
	l := newTestHistoryLogic(t)

	_, err := l.AppendMessages(1, []NewMessage{
		{SenderType: models.SenderType(9), Content: "bad"},
	})
	assert.ErrorIs(t, err, ErrInvalidSenderType)

	// Rejected before any side effect: no history was created.
	_, found, err := l.GetHistory(1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAppendMessagesFillsMissingTimestamps(t *testing.T) {
	l := newTestHistoryLogic(t)

	before := time.Now()
	stored, err := l.AppendMessages(1, []NewMessage{
		{SenderType: models.SenderUser, Content: "hello"},
	})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].CreatedAt.Before(before))
}
