package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cvntrieu/Group-3/logic"
)

// SessionController handles HTTP requests
type SessionController struct {
	sessionLogic *logic.SessionLogic
}

func NewSessionController(sessionLogic *logic.SessionLogic) *SessionController {
	return &SessionController{sessionLogic: sessionLogic}
}

// CreateSession handles POST /api/session. The body is optional: a
// returning client sends its cached identity, a fresh one sends nothing
// and gets a generated name back.
func (c *SessionController) CreateSession(ctx *gin.Context) {
	type Request struct {
		ParticipantIdentity string `json:"participant_identity"`
		AgentName           string `json:"agent_name"`
	}
	var req Request
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	details, err := c.sessionLogic.CreateSession(req.ParticipantIdentity, req.AgentName)
	if err != nil {
		logrus.WithError(err).Error("failed to create session")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.JSON(http.StatusOK, details)
}
