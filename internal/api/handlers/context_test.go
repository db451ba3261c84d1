package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := UserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", "")
	_, ok = UserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", "oidc-sub-123")
	id, ok := UserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "oidc-sub-123", id)
}
