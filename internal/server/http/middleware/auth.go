package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	authCookieName    = "orderdesk_token"
)

// TokenParser verifies dashboard cookies.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// SessionSource exposes the active staff session.
type SessionSource interface {
	Session() (model.Session, bool)
}

// AuthRequired admits requests whose token names the active session.
func AuthRequired(tokens TokenParser, sessions SessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		sessionID, err := tokens.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		sess, ok := sessions.Session()
		if !ok || sess.ID != sessionID {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(SessionContextKey, sess)
		c.Next()
	}
}

// AuthWhileSignedIn lets requests through while nobody is signed in, so the
// dashboard can be set up before the first login. Once a session is active it
// behaves like AuthRequired.
func AuthWhileSignedIn(tokens TokenParser, sessions SessionSource) gin.HandlerFunc {
	required := AuthRequired(tokens, sessions)
	return func(c *gin.Context) {
		if _, ok := sessions.Session(); !ok {
			c.Next()
			return
		}
		required(c)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
