package handler

import (
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer     = "Something went wrong. Please try again later."
	errInvalidCredentials = "Invalid email or password."
	errLoginFieldsMissing = "Email and password are required."
	errEmailTaken         = "Registration failed: that email is already registered."
	errCountryNotFound    = "Country not found. Check the spelling and try again."
	errCountryVisited     = "That country has already been added."
	errCountryMissing     = "Enter a country name."
	errPageNotFound       = "Page not found"
	errProductNotFound    = "Product not found"
	errBadRequest         = "The request could not be processed."
)

// page adds the identity shared by every view to data.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if id, ok := reqctx.Identity(c.Request.Context()); ok {
		data["User"] = id
	}
	return data
}

// renderError maps err to a status and the generic error page. Dependency
// failures are logged with their cause and never shown to the user.
func renderError(c *gin.Context, logger *slog.Logger, err error, notFound string) {
	var status int
	var heading string

	switch domain.KindOf(err) {
	case domain.KindAuth:
		c.Redirect(http.StatusFound, "/login")
		return
	case domain.KindNotFound:
		status, heading = http.StatusNotFound, notFound
	case domain.KindValidation:
		status, heading = http.StatusBadRequest, errBadRequest
	case domain.KindConflict:
		status, heading = http.StatusConflict, errBadRequest
	default:
		logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		status, heading = http.StatusInternalServerError, errInternalServer
	}

	c.HTML(status, "error.html", page(c, heading, gin.H{"Heading": heading}))
}

// NotFound renders the 404 page for unmatched routes.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error.html", page(c, errPageNotFound, gin.H{"Heading": errPageNotFound}))
}
