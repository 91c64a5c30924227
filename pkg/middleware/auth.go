package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/placementhub/placementhub/backend/go-services/internal/models"
)

// ContextUserKey is where the identity middleware stores the acting user.
const ContextUserKey = "currentUser"

// IdentityResolver is the minimal interface the middleware depends on.
// Implementations return (nil, nil) for tokens that do not resolve to a
// live identity.
type IdentityResolver interface {
	Identify(ctx context.Context, raw string) (*models.User, error)
}

// Identity resolves an optional Bearer token into the acting user. Requests
// without a token pass through anonymously; gated handlers pair this with
// RequireIdentity.
func Identity(res IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.Next()
			return
		}
		u, err := res.Identify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "session lookup failed"})
			return
		}
		if u != nil {
			c.Set(ContextUserKey, *u)
		}
		c.Next()
	}
}

// RequireIdentity aborts with 401 when no identity was resolved. It never
// decides permissions; role checks stay with the services behind it.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the acting user stored by Identity.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
