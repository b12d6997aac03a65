package jwtmw

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"seeek_backend/internal/feature/auth/domain/entity"
)

// ContextUser is the Gin context key holding the authenticated *entity.User.
const ContextUser = "authUser"

// UserFinder resolves the account behind a token's email claim.
// The original middleware re-checks on every request that the account
// still exists, so a token for a deleted account is rejected.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to accounts that still exist.
func AuthRequired(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access."})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Load secret key from environment variable
		secret := os.Getenv(EnvKeySecretKey)
		if secret == "" {
			// Server misconfiguration (SECRET_KEY not set)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 3. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access."})
			return
		}

		// 4. Extract the email claim
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access."})
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access."})
			return
		}

		// 5. Ensure the account still exists and attach it to the context
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists."})
			return
		}
		c.Set(ContextUser, user)

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
