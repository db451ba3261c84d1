package browse

import (
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

// DownloadObject mints a short-lived presigned GET so the browser pulls
// straight from S3 instead of proxying bytes through this service.
func DownloadObject(c *gin.Context) {
	account, ok := accountFromRequest(c)
	if !ok {
		return
	}

	bucket := c.Query("bucket")
	key := c.Query("key")
	if bucket == "" || key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket and key are required"})
		return
	}

	url, err := services.GetGateway().PresignedGet(
		c.Request.Context(), account, bucket, key, 15*time.Minute, path.Base(key))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to sign download URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
