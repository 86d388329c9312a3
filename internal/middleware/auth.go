package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"perawise/internal/identity"
)

// Context keys set by AuthRequired.
const (
	userIDKey   = "userID"
	identityKey = "identity"
)

// mockUserCookie is the cookie the mock sign-in flow stores its serialized
// identity in. Checked only when no Authorization header is present.
const mockUserCookie = "mockUser"

// AuthRequired verifies the request's bearer token with the configured
// identity verifier and stores the resulting identity in the context.
// Every failure is a uniform 401; there is no partial success.
func AuthRequired(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		ident, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, ident.ID)
		c.Set(identityKey, ident)
		c.Next()
	}
}

// bearerToken extracts the credential from the Authorization header, falling
// back to the mock identity cookie.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return parts[1]
	}

	if cookie, err := c.Cookie(mockUserCookie); err == nil {
		return cookie
	}
	return ""
}
