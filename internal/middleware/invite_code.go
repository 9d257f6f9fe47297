package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InviteCodeMiddleware gates signup behind the X-Invite-Code header. An empty
// code leaves signup open.
func InviteCodeMiddleware(inviteCode string) gin.HandlerFunc {
	if inviteCode == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-Invite-Code")
		if subtle.ConstantTimeCompare([]byte(clientKey), []byte(inviteCode)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid invite code"})
			return
		}
		c.Next()
	}
}
