package handler

import (
	"net/http"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/auth"
	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/gin-gonic/gin"
)

// Cookies writes the credential cookie. Secure is set outside local and test.
type Cookies struct {
	Secure bool
}

func (k Cookies) set(c *gin.Context, s *domain.Session) {
	maxAge := int(time.Until(s.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(auth.DefaultTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, s.Token, maxAge, "/", "", k.Secure, true)
}

func (k Cookies) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", k.Secure, true)
}
