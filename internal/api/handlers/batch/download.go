package batch

import (
	"context"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	runner "github.com/wickedfiles/wickedfiles/internal/batch"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

type downloadURL struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// DownloadObjects mints one presigned GET per key.
func DownloadObjects(c *gin.Context) {
	req, account, ok := bindRequest(c)
	if !ok {
		return
	}

	gateway := services.GetGateway()

	var mu sync.Mutex
	urls := make(map[string]string, len(req.Keys))

	result := runner.Run(c.Request.Context(), req.Keys, func(ctx context.Context, key string) error {
		url, err := gateway.PresignedGet(ctx, account, req.Bucket, key, 15*time.Minute, path.Base(key))
		if err != nil {
			return err
		}
		mu.Lock()
		urls[key] = url
		mu.Unlock()
		return nil
	})

	signed := make([]downloadURL, 0, len(result.Succeeded))
	for _, key := range result.Succeeded {
		signed = append(signed, downloadURL{Key: key, URL: urls[key]})
	}

	c.JSON(http.StatusOK, gin.H{
		"urls":   signed,
		"errors": result.Errors,
	})
}
