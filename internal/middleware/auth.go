package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/hub-schedules/internal/config"
	"github.com/BruksfildServices01/hub-schedules/internal/httperr"
)

const (
	ContextSubject     = "subject"
	ContextHubID       = "hubID"
	ContextPermissions = "permissions"
)

// AuthMiddleware validates an HS256 bearer token and stores its subject, hub
// and permission claims on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		subject, _ := claims["sub"].(string)
		rawHub, _ := claims["hub_id"].(string)
		hubID, err := uuid.Parse(rawHub)
		if subject == "" || err != nil {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextSubject, subject)
		c.Set(ContextHubID, hubID)
		c.Set(ContextPermissions, permissionsFrom(claims))

		c.Next()
	}
}

func permissionsFrom(claims jwt.MapClaims) map[string]bool {
	perms := map[string]bool{}
	raw, _ := claims["permissions"].([]interface{})
	for _, p := range raw {
		if s, ok := p.(string); ok {
			perms[s] = true
		}
	}
	return perms
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "authentication required")
	c.Abort()
}

// RequirePermission lets the request through only when the token carries perm.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		perms, _ := c.Get(ContextPermissions)
		if set, ok := perms.(map[string]bool); !ok || !set[perm] {
			httperr.Forbidden(c, "missing_permission", "permission "+perm+" is required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func HubID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(ContextHubID)
	id, _ := v.(uuid.UUID)
	return id
}

func Subject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}
