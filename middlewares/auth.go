package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkim2178/My-Jet/models"
	"github.com/mkim2178/My-Jet/utils"
)

const currentUserKey = "currentUser"

// UserFinder resolves a login id to a stored user.
type UserFinder interface {
	FindByLoginID(ctx context.Context, loginID string) (*models.User, error)
}

// AuthMiddleware authenticates a request from the access_token cookie. The
// cookie value is "Bearer <jwt>"; the prefix is stripped before
// verification. The token's subject must still exist as a user, otherwise
// the token is worthless even if the signature checks out.
func AuthMiddleware(secret []byte, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("access_token")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		loginID, err := utils.ParseToken(secret, tokenString)
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
			return
		}

		user, err := users.FindByLoginID(c.Request.Context(), loginID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
