package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

func GetSettings(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	s, exists := query.GetSettings(userID)
	if !exists {
		s = models.DefaultSettings(userID)
	}

	c.JSON(http.StatusOK, gin.H{"settings": s})
}

type updateSettingsRequest struct {
	Theme                string `json:"theme"`
	DefaultExpiryHours   int    `json:"defaultExpiryHours"`
	DefaultAllowDownload bool   `json:"defaultAllowDownload"`
}

func UpdateSettings(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Theme == "" {
		req.Theme = "system"
	}
	if req.DefaultExpiryHours < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "defaultExpiryHours must not be negative"})
		return
	}

	if err := command.EnsureUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	s := models.UserSettings{
		UserID:               userID,
		Theme:                req.Theme,
		DefaultExpiryHours:   req.DefaultExpiryHours,
		DefaultAllowDownload: req.DefaultAllowDownload,
	}
	if err := command.UpsertSettings(s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": s})
}
