package batch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	runner "github.com/wickedfiles/wickedfiles/internal/batch"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

// MoveObjects is copy-then-delete per key. A key whose copy succeeded but
// whose delete failed is reported as an error; the copy is not rolled
// back.
func MoveObjects(c *gin.Context) {
	req, account, ok := bindRequest(c)
	if !ok {
		return
	}
	if req.DestBucket == "" {
		req.DestBucket = req.Bucket
	}

	gateway := services.GetGateway()
	result := runner.Run(c.Request.Context(), req.Keys, func(ctx context.Context, key string) error {
		if err := gateway.CopyObject(ctx, account, req.Bucket, key, req.DestBucket, destKey(req.DestPrefix, key)); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		if err := gateway.RemoveObject(ctx, account, req.Bucket, key); err != nil {
			return fmt.Errorf("copied but delete failed: %w", err)
		}
		return nil
	})

	c.JSON(http.StatusOK, gin.H{
		"moved":  result.Succeeded,
		"errors": result.Errors,
	})
}
