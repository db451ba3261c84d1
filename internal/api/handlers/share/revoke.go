package share

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
)

// RevokeShare marks the link as manually expired. The record and its
// audit trail stay around until the owner deletes the share.
func RevokeShare(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	shareID := c.Param("id")
	if !command.RevokeShare(shareID, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Share revoked",
		"share_id": shareID,
	})
}
