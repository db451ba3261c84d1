package share

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
	sharesvc "github.com/wickedfiles/wickedfiles/internal/share"
)

type createShareRequest struct {
	AccountID     string     `json:"accountId" binding:"required"`
	Bucket        string     `json:"bucket" binding:"required"`
	Path          string     `json:"path" binding:"required"`
	Filename      string     `json:"filename" binding:"required"`
	Filesize      int64      `json:"filesize"`
	ContentType   string     `json:"contentType"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	Password      string     `json:"password"`
	AllowDownload bool       `json:"allowDownload"`
	IsPublic      bool       `json:"isPublic"`
}

// CreateShare issues a new token-addressed link for an object the caller
// owns through one of their accounts.
func CreateShare(c *gin.Context) {
	userID, ok := handlers.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if _, exists := query.GetAccountForUser(req.AccountID, userID); !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	record := models.SharedFile{
		ID:            uuid.New().String(),
		UserID:        userID,
		AccountID:     req.AccountID,
		Bucket:        req.Bucket,
		Path:          req.Path,
		Filename:      req.Filename,
		Filesize:      req.Filesize,
		ContentType:   contentType,
		ShareToken:    sharesvc.NewToken(),
		ExpiresAt:     req.ExpiresAt,
		AllowDownload: req.AllowDownload,
		IsPublic:      req.IsPublic,
		CreatedAt:     time.Now(),
	}

	if req.Password != "" {
		hash, err := sharesvc.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to protect share"})
			return
		}
		record.PasswordHash = &hash
	}

	if err := command.SaveShare(record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save share"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"share":     record,
		"share_url": "/api/shared/" + record.ShareToken,
	})
}
