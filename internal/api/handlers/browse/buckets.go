package browse

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

func ListBuckets(c *gin.Context) {
	account, ok := accountFromRequest(c)
	if !ok {
		return
	}

	buckets, err := services.GetGateway().ListBuckets(c.Request.Context(), account)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to list buckets: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}
