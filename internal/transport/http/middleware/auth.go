package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/auth"
	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

// TokenVerifier is satisfied by *auth.Manager.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}

// RequireIdentity resolves the token cookie into a request-scoped identity.
// A missing or invalid token redirects to the login page and stops the chain.
func RequireIdentity(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_middleware")
	return func(c *gin.Context) {
		if !resolve(c, verifier, logger) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalIdentity attaches the identity when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalIdentity(verifier TokenVerifier, logger *slog.Logger) gin.HandlerFunc {
	logger = logger.With("component", "auth_middleware")
	return func(c *gin.Context) {
		resolve(c, verifier, logger)
		c.Next()
	}
}

func resolve(c *gin.Context, verifier TokenVerifier, logger *slog.Logger) bool {
	raw, err := c.Cookie(auth.CookieName)
	if err != nil || raw == "" {
		return false
	}

	id, err := verifier.Verify(raw)
	if err != nil {
		metrics.TokenRejectionsTotal.Inc()
		logger.InfoContext(c.Request.Context(), "token rejected", "path", c.Request.URL.Path, "reason", err)
		return false
	}

	c.Request = c.Request.WithContext(reqctx.WithIdentity(c.Request.Context(), id))
	return true
}
