package handlers

import "github.com/gin-gonic/gin"

// UserIDFromContext returns the OIDC subject set by the auth middleware.
func UserIDFromContext(c *gin.Context) (string, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := id.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
