package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cvntrieu/Group-3/logic"
)

// AccountController handles HTTP requests
type AccountController struct {
	accountLogic *logic.AccountLogic
}

func NewAccountController(accountLogic *logic.AccountLogic) *AccountController {
	return &AccountController{accountLogic: accountLogic}
}

// Register handles POST /api/account/register
func (c *AccountController) Register(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expiresAt, err := c.accountLogic.Register(req.Username)
	if err != nil {
		if errors.Is(err, logic.ErrUsernameTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
			return
		}
		logrus.WithError(err).Error("register failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"username":   user.Username,
			"token":      token,
			"expires_at": expiresAt,
		},
	})
}

// Login handles POST /api/account/login
func (c *AccountController) Login(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expiresAt, err := c.accountLogic.Login(req.Username)
	if err != nil {
		if errors.Is(err, logic.ErrUnauthenticated) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		logrus.WithError(err).Error("login failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"username":   user.Username,
			"token":      token,
			"expires_at": expiresAt,
		},
	})
}
