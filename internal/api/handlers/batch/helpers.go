package batch

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

// request is the shared body for all batch endpoints. destBucket and
// destPrefix only matter for copy/move.
type request struct {
	AccountID  string   `json:"accountId" binding:"required"`
	Bucket     string   `json:"bucket" binding:"required"`
	Keys       []string `json:"keys" binding:"required"`
	DestBucket string   `json:"destBucket"`
	DestPrefix string   `json:"destPrefix"`
}

func bindRequest(c *gin.Context) (request, models.S3Account, bool) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return request{}, models.S3Account{}, false
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return request{}, models.S3Account{}, false
	}
	if len(req.Keys) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keys must not be empty"})
		return request{}, models.S3Account{}, false
	}

	account, exists := query.GetAccountForUser(req.AccountID, userID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return request{}, models.S3Account{}, false
	}
	return req, account, true
}

// destKey places a source key under the destination prefix, keeping only
// its base name.
func destKey(destPrefix, srcKey string) string {
	return strings.TrimPrefix(path.Join(destPrefix, path.Base(srcKey)), "/")
}
