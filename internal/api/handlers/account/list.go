package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

func ListAccounts(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	accounts, err := query.GetUserAccounts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch accounts"})
		return
	}
	if accounts == nil {
		accounts = []models.S3Account{}
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
