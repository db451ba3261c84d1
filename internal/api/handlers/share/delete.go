package share

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
)

// DeleteShare removes the share; its access-log rows cascade away with
// it.
func DeleteShare(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	shareID := c.Param("id")
	if !command.DeleteShare(shareID, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Share deleted",
		"share_id": shareID,
	})
}
