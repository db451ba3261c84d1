package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
)

func DeleteAccount(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	accountID := c.Param("id")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account ID is required"})
		return
	}

	if !command.DeleteAccount(accountID, userID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	services.GetGateway().Invalidate(accountID)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Account deleted successfully",
		"account_id": accountID,
	})
}
