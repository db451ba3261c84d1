package share

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

func GetShareLogs(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	record, exists := query.GetShareForUser(c.Param("id"), userID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "share not found"})
		return
	}

	logs, err := query.GetAccessLogs(record.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch access logs"})
		return
	}
	if logs == nil {
		logs = []models.FileAccessLog{}
	}

	c.JSON(http.StatusOK, gin.H{
		"share_id":     record.ID,
		"access_count": record.AccessCount,
		"logs":         logs,
	})
}
