package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/gin-gonic/gin"
)

type travelUsecaser interface {
	Overview(ctx context.Context, userID int64) (*domain.TravelOverview, error)
	AddVisitedCountry(ctx context.Context, userID int64, name string) (*domain.Country, error)
}

type featuredLister interface {
	Featured(ctx context.Context) ([]*domain.Product, error)
}

type TravelHandler struct {
	travel  travelUsecaser
	catalog featuredLister
	cookies Cookies
	logger  *slog.Logger
}

func NewTravelHandler(travel travelUsecaser, catalog featuredLister, cookies Cookies, logger *slog.Logger) *TravelHandler {
	return &TravelHandler{
		travel:  travel,
		catalog: catalog,
		cookies: cookies,
		logger:  logger.With("component", "travel_handler"),
	}
}

type addCountryForm struct {
	Country string `form:"country"`
}

// GET /
func (h *TravelHandler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, "")
}

// POST /add
// Unknown, duplicate and empty names and malformed forms re-render home with a message.
func (h *TravelHandler) AddCountry(c *gin.Context) {
	id, _ := reqctx.Identity(c.Request.Context())

	var form addCountryForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.InfoContext(c.Request.Context(), "add country: bad form", "error", err)
		h.renderHome(c, http.StatusBadRequest, errBadRequest)
		return
	}

	_, err := h.travel.AddVisitedCountry(c.Request.Context(), id.UserID, form.Country)
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/")
	case errors.Is(err, domain.ErrCountryNotFound):
		h.renderHome(c, http.StatusNotFound, errCountryNotFound)
	case errors.Is(err, domain.ErrCountryAlreadyVisited):
		h.renderHome(c, http.StatusConflict, errCountryVisited)
	case domain.KindOf(err) == domain.KindValidation:
		h.renderHome(c, http.StatusBadRequest, errCountryMissing)
	default:
		renderError(c, h.logger, err, errPageNotFound)
	}
}

func (h *TravelHandler) renderHome(c *gin.Context, status int, msg string) {
	id, _ := reqctx.Identity(c.Request.Context())

	overview, err := h.travel.Overview(c.Request.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Token outlived its account.
			h.cookies.clear(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		renderError(c, h.logger, err, errPageNotFound)
		return
	}

	products, err := h.catalog.Featured(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err, errPageNotFound)
		return
	}

	c.HTML(status, "home.html", page(c, "Home", gin.H{
		"Error":    msg,
		"Overview": overview,
		"Products": products,
	}))
}
