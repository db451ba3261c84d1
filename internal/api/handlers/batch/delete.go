package batch

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	runner "github.com/wickedfiles/wickedfiles/internal/batch"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

func DeleteObjects(c *gin.Context) {
	req, account, ok := bindRequest(c)
	if !ok {
		return
	}

	gateway := services.GetGateway()
	result := runner.Run(c.Request.Context(), req.Keys, func(ctx context.Context, key string) error {
		return gateway.RemoveObject(ctx, account, req.Bucket, key)
	})

	c.JSON(http.StatusOK, gin.H{
		"deleted": result.Succeeded,
		"errors":  result.Errors,
	})
}
