package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SessionCookie identifies the shopper's browser session; the cart is keyed
// by it.
const SessionCookie = "catmanor_session"

const sessionTTL = 30 * 24 * time.Hour

// SessionMiddleware assigns a session cookie to browsers that do not carry
// one yet. The session id is stored on the echo context for handlers.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := sessionFromCookie(c)
			if id == "" {
				id = newSessionID()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(sessionTTL),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(SessionCookie, id)
			return next(c)
		}
	}
}

// SessionID returns the request's session id, minting one if the middleware
// did not run.
func SessionID(c echo.Context) string {
	if v, ok := c.Get(SessionCookie).(string); ok && v != "" {
		return v
	}
	if id := sessionFromCookie(c); id != "" {
		return id
	}
	return newSessionID()
}

func sessionFromCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "anon"
	}
	return hex.EncodeToString(buf)
}
