package browse

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

func ListObjects(c *gin.Context) {
	account, ok := accountFromRequest(c)
	if !ok {
		return
	}

	bucket := c.Query("bucket")
	if bucket == "" {
		bucket = account.DefaultBucket
	}
	if bucket == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket is required"})
		return
	}

	prefix := c.Query("prefix")
	recursive := c.Query("recursive") == "true"

	entries, err := services.GetGateway().ListObjects(c.Request.Context(), account, bucket, prefix, recursive)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list objects: " + err.Error()})
		return
	}
	if entries == nil {
		entries = []services.ObjectEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"bucket":  bucket,
		"prefix":  prefix,
		"objects": entries,
	})
}
