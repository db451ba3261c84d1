package browse

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

// accountFromRequest resolves the accountId query parameter to an account
// the caller owns. Writes the error response itself on failure.
func accountFromRequest(c *gin.Context) (models.S3Account, bool) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return models.S3Account{}, false
	}

	accountID := c.Query("accountId")
	if accountID == "" {
		accountID = c.PostForm("accountId")
	}
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountId is required"})
		return models.S3Account{}, false
	}

	account, exists := query.GetAccountForUser(accountID, userID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return models.S3Account{}, false
	}
	return account, true
}
