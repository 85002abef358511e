package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coach-backend/internal/shared/auth"
	"coach-backend/internal/shared/server/respond"
	"coach-backend/internal/shared/telemetry"
)

// WebhookAuth requires a service-role bearer JWT signed with secret.
// An empty secret disables the check.
func WebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(secret) == "" {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, found := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !found || token == "" {
			respond.Text(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		if _, err := auth.VerifyServiceToken(token, []byte(secret)); err != nil {
			telemetry.Error("webhook.auth_failed", map[string]any{
				"request_id": RequestIDFromContext(c),
				"error":      err,
			})
			respond.Text(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}
		c.Next()
	}
}
