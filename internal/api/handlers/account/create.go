package account

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
)

type createAccountRequest struct {
	Name            string `json:"name" binding:"required"`
	AccessKeyID     string `json:"accessKeyId" binding:"required"`
	SecretAccessKey string `json:"secretAccessKey" binding:"required"`
	Region          string `json:"region" binding:"required"`
	Endpoint        string `json:"endpoint"`
	DefaultBucket   string `json:"defaultBucket"`
}

// CreateAccount stores a new set of S3 credentials after probing them
// with a ListBuckets call.
func CreateAccount(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	account := models.S3Account{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            req.Name,
		AccessKeyID:     req.AccessKeyID,
		SecretAccessKey: req.SecretAccessKey,
		Region:          req.Region,
		Endpoint:        req.Endpoint,
		DefaultBucket:   req.DefaultBucket,
		CreatedAt:       time.Now(),
	}

	if err := services.GetGateway().ValidateAccount(c.Request.Context(), account); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "credential check failed: " + err.Error()})
		return
	}

	if err := command.EnsureUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save account"})
		return
	}
	if err := command.SaveAccount(account); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"account": account})
}
