package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"homehero/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by VerifyToken on successful resolution.
const (
	ContextUserEmail = "userEmail"
	ContextUser      = "user"
)

// VerifyToken gates protected routes behind the identity resolver. On success
// it attaches the resolved email and claims to the request context; on failure
// it short-circuits with 401.
func VerifyToken(resolver *auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolver.Resolve(c.Request.Context(), auth.Input{
			AuthHeader: c.GetHeader("Authorization"),
			Body:       peekBody(c),
			Path:       c.Request.URL.Path,
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims := identity.Claims
		if claims == nil {
			claims = auth.Claims{"email": identity.Email}
		}
		c.Set(ContextUserEmail, identity.Email)
		c.Set(ContextUser, claims)
		c.Next()
	}
}

// UserEmail returns the resolved identity email from the request context.
func UserEmail(c *gin.Context) string {
	email, _ := c.Get(ContextUserEmail)
	s, _ := email.(string)
	return s
}

// peekBody reads the JSON request body for the resolver and restores it so
// downstream handlers can bind it again. A missing or non-object body yields
// nil.
func peekBody(c *gin.Context) map[string]interface{} {
	if c.Request.Body == nil {
		return nil
	}
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(data))

	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}
	return body
}
