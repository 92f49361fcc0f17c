package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cvntrieu/Group-3/logic"
)

// HistoryController handles HTTP requests
type HistoryController struct {
	historyLogic *logic.HistoryLogic
}

func NewHistoryController(historyLogic *logic.HistoryLogic) *HistoryController {
	return &HistoryController{historyLogic: historyLogic}
}

// GetConversationHistory handles GET /api/conversation-history?limit=N.
// limit keeps only the last N messages, still ascending. A user without a
// history gets a 200 with an explanatory message, not an error.
func (c *HistoryController) GetConversationHistory(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	history, found, err := c.historyLogic.GetHistory(userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to load conversation history")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !found {
		ctx.JSON(http.StatusOK, gin.H{"message": "No conversation history found for the user."})
		return
	}

	messages, err := c.historyLogic.ListMessages(history, limit)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("failed to list messages")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":       history.ID,
		"messages": messages,
	})
}
