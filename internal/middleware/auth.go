package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haveanidea/api/pkg/auth"
)

// WalletKey is the gin context key under which the authenticated caller's
// wallet address is stored.
const WalletKey = "wallet"

// AuthMiddleware validates the bearer token and stashes the wallet address
// from its subject claim. Validation is stateless; no store access here.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractTokenFromHeader(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing or invalid token"})
			return
		}

		claims, err := jwtManager.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			return
		}

		c.Set(WalletKey, claims.Subject)
		c.Next()
	}
}

// CallerWallet reads the wallet set by AuthMiddleware.
func CallerWallet(c *gin.Context) (string, bool) {
	wallet, ok := c.Get(WalletKey)
	if !ok {
		return "", false
	}
	s, ok := wallet.(string)
	return s, ok && s != ""
}
