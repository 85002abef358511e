package middleware

import "github.com/gin-gonic/gin"

const (
	userIDKey     = "userId"
	payloadKeyKey = "payloadKey"
)

// SetSyncedIdentity records which identity a request is about, for request logs.
func SetSyncedIdentity(c *gin.Context, userID, payloadKey string) {
	if userID != "" {
		c.Set(userIDKey, userID)
	}
	if payloadKey != "" {
		c.Set(payloadKeyKey, payloadKey)
	}
}

// UserIDFromContext returns the identity id recorded for this request, if any.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(userIDKey)
}
