// README: Firebase auth middleware; anonymous callers pass through with no UID.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/infra"
)

const ctxKeyUID = "auth.uid"

// Auth verifies the Authorization header when present. Requests without the
// header proceed anonymously with an empty UID. A header that is present but
// invalid is rejected outright.
func Auth(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}
		token, err := verifier.VerifyIDToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxKeyUID, token.UID)
		c.Next()
	}
}

// CallerUID returns the verified UID for the request, or "" for anonymous callers.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}
