package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cvntrieu/Group-3/logic"
	"github.com/cvntrieu/Group-3/models"
)

// MessageController handles HTTP requests
type MessageController struct {
	historyLogic *logic.HistoryLogic
}

func NewMessageController(historyLogic *logic.HistoryLogic) *MessageController {
	return &MessageController{historyLogic: historyLogic}
}

// AddMessages handles POST /api/messages. The body is an ordered batch so
// a client can submit a user turn and the bot reply in one call; the
// user's history is created lazily on the first append.
func (c *MessageController) AddMessages(ctx *gin.Context) {
	type Request struct {
		SenderType int16     `json:"sender_type"`
		Content    string    `json:"content" binding:"required"`
		CreatedAt  time.Time `json:"created_at"`
	}
	var req []Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "empty message batch"})
		return
	}

	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	batch := make([]logic.NewMessage, 0, len(req))
	for _, m := range req {
		batch = append(batch, logic.NewMessage{
			SenderType: models.SenderType(m.SenderType),
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		})
	}

	stored, err := c.historyLogic.AppendMessages(userID, batch)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidSenderType) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "sender_type must be 0 (user) or 1 (bot)"})
			return
		}
		logrus.WithError(err).WithField("user_id", userID).Error("failed to append messages")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, stored)
}
