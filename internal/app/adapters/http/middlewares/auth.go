package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth protects operator endpoints with HTTP Basic auth against a
// bcrypt token hash from the config.
func (m *Middlewares) AdminAuth(user, tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, p, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 ||
			bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(p)) != nil {
			c.Header("WWW-Authenticate", `Basic realm="statushub"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
