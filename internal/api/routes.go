package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/cmd/middleware"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/account"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/batch"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/browse"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/settings"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/share"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, PATCH, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	}
}

func RegisterRoutes(r *gin.Engine) {
	// Enable CORS for preflight requests
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		// Public share resolver — the only unauthenticated data endpoint
		api.GET("/shared/:token", share.ResolveShare)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth())
		{
			// S3 account endpoints
			authed.POST("/accounts", account.CreateAccount)
			authed.GET("/accounts", account.ListAccounts)
			authed.DELETE("/accounts/:id", account.DeleteAccount)
			authed.POST("/accounts/:id/validate", account.ValidateAccount)

			// Browsing
			authed.GET("/buckets", browse.ListBuckets)
			authed.GET("/objects", browse.ListObjects)
			authed.POST("/upload", browse.UploadObjects)
			authed.GET("/download", browse.DownloadObject)

			// Batch operations
			authed.POST("/batch/delete", batch.DeleteObjects)
			authed.POST("/batch/copy", batch.CopyObjects)
			authed.POST("/batch/move", batch.MoveObjects)
			authed.POST("/batch/download", batch.DownloadObjects)

			// Share management
			authed.POST("/shared-files", share.CreateShare)
			authed.GET("/shared-files", share.ListShares)
			authed.PATCH("/shared-files/:id/revoke", share.RevokeShare)
			authed.DELETE("/shared-files/:id", share.DeleteShare)
			authed.GET("/shared-files/:id/logs", share.GetShareLogs)

			// Settings
			authed.GET("/settings", settings.GetSettings)
			authed.PUT("/settings", settings.UpdateSettings)
		}
	}
}
