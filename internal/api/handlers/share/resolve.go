package share

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
	sharesvc "github.com/wickedfiles/wickedfiles/internal/share"
)

// ResolveShare is the public entry point behind every share URL. Access
// checks run in precedence order; the counter and audit row are only
// written once the link is known to be live, so probing (wrong password,
// expired token) never inflates analytics.
func ResolveShare(c *gin.Context) {
	token := c.Param("token")
	now := time.Now()

	record, exists := query.GetShareByToken(token)
	var recordPtr = &record
	if !exists {
		recordPtr = nil
	}

	switch sharesvc.Resolve(recordPtr, c.Query("password"), now) {
	case sharesvc.StateNotFound, sharesvc.StateExpired:
		// Deliberately the same surface: a guessing client learns nothing
		// about whether the token ever existed.
		c.JSON(http.StatusNotFound, gin.H{"error": "file not available"})
		return
	case sharesvc.StateRevoked:
		c.JSON(http.StatusForbidden, gin.H{"error": "this link was manually expired by the owner"})
		return
	case sharesvc.StatePasswordRequired:
		c.JSON(http.StatusUnauthorized, gin.H{"passwordRequired": true})
		return
	}

	account, ok := query.GetAccount(record.AccountID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not available"})
		return
	}

	isDownload := c.Query("download") == "true"

	signedURL, err := services.GetGateway().PresignedGet(
		c.Request.Context(), account, record.Bucket, record.Path,
		sharesvc.DeliveryExpiry(&record, now), record.Filename)
	if err != nil {
		// Delivery failure, not an access-control failure: the link is
		// live, S3 signing broke.
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to prepare file delivery"})
		return
	}

	if err := command.IncrementAccessCount(record.ID); err != nil {
		log.Printf("warning: failed to increment access count for share %s: %v", record.ID, err)
	}
	if err := command.RecordAccess(record.ID, c.ClientIP(), c.Request.UserAgent(), c.Request.Referer(), isDownload); err != nil {
		log.Printf("warning: failed to record access for share %s: %v", record.ID, err)
	}

	event := handlers.ShareAccessedEvent{
		ShareID:    record.ID,
		UserID:     record.UserID,
		Bucket:     record.Bucket,
		Path:       record.Path,
		IsDownload: isDownload,
		AccessedAt: now.UTC().Format(time.RFC3339),
	}
	if err := services.PublishEvent("shares.accessed", event); err != nil {
		log.Printf("warning: failed to publish shares.accessed event: %v", err)
	}

	response := gin.H{
		"filename":      record.Filename,
		"contentType":   record.ContentType,
		"filesize":      record.Filesize,
		"signedUrl":     signedURL,
		"allowDownload": record.AllowDownload,
		"expiresAt":     record.ExpiresAt,
	}
	if record.IsPublic {
		response["directS3Url"] = services.DirectURL(account, record.Bucket, record.Path)
	}

	c.JSON(http.StatusOK, response)
}
