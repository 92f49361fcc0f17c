package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// extractUserID resolves the authenticated user from the claims the auth
// middleware stored in the context. It writes the 401 itself so handlers
// only need to bail out.
func extractUserID(c *gin.Context) (uint64, error) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return 0, errors.New("user not found in context")
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user claims"})
		return 0, errors.New("invalid user claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "sub not found in token"})
		return 0, errors.New("sub not found in token")
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid subject in token"})
		return 0, err
	}

	return userID, nil
}
