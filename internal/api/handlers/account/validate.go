package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

// ValidateAccount re-probes stored credentials so the UI can flag stale
// keys without waiting for a browse call to fail.
func ValidateAccount(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	account, exists := query.GetAccountForUser(c.Param("id"), userID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	if err := services.GetGateway().ValidateAccount(c.Request.Context(), account); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
