package batch

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	runner "github.com/wickedfiles/wickedfiles/internal/batch"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

func CopyObjects(c *gin.Context) {
	req, account, ok := bindRequest(c)
	if !ok {
		return
	}
	if req.DestBucket == "" {
		req.DestBucket = req.Bucket
	}

	gateway := services.GetGateway()
	result := runner.Run(c.Request.Context(), req.Keys, func(ctx context.Context, key string) error {
		return gateway.CopyObject(ctx, account, req.Bucket, key, req.DestBucket, destKey(req.DestPrefix, key))
	})

	c.JSON(http.StatusOK, gin.H{
		"copied": result.Succeeded,
		"errors": result.Errors,
	})
}
