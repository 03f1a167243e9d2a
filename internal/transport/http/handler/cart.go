package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/ErlanBelekov/wanderstore/internal/usecase"
	"github.com/gin-gonic/gin"
)

type cartUsecaser interface {
	AddToCart(ctx context.Context, input usecase.AddToCartInput) (*domain.CartItem, error)
	GetCart(ctx context.Context, userID int64) (*domain.Cart, error)
}

type CartHandler struct {
	cart    cartUsecaser
	cookies Cookies
	logger  *slog.Logger
}

func NewCartHandler(cart cartUsecaser, cookies Cookies, logger *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, cookies: cookies, logger: logger.With("component", "cart_handler")}
}

// quantity is capped at usecase.MaxCartQuantity.
type addToCartForm struct {
	ProductID int64 `form:"productId" binding:"required,min=1"`
	Quantity  int   `form:"quantity"  binding:"required,min=1,max=1000"`
}

// POST /cart/add
func (h *CartHandler) Add(c *gin.Context) {
	id, _ := reqctx.Identity(c.Request.Context())

	var form addToCartForm
	if err := c.ShouldBind(&form); err != nil {
		msg := bindMessage(err)
		c.HTML(http.StatusBadRequest, "error.html", page(c, msg, gin.H{"Heading": msg}))
		return
	}

	_, err := h.cart.AddToCart(c.Request.Context(), usecase.AddToCartInput{
		UserID:    id.UserID,
		ProductID: form.ProductID,
		Quantity:  form.Quantity,
	})
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/cart")
	case errors.Is(err, domain.ErrUserNotFound):
		// Token outlived its account.
		h.cookies.clear(c)
		c.Redirect(http.StatusFound, "/login")
	case domain.KindOf(err) == domain.KindValidation:
		msg := validationMessage(err)
		c.HTML(http.StatusBadRequest, "error.html", page(c, msg, gin.H{"Heading": msg}))
	default:
		renderError(c, h.logger, err, errProductNotFound)
	}
}

// GET /cart
func (h *CartHandler) View(c *gin.Context) {
	id, _ := reqctx.Identity(c.Request.Context())

	cart, err := h.cart.GetCart(c.Request.Context(), id.UserID)
	if err != nil {
		renderError(c, h.logger, err, errPageNotFound)
		return
	}
	c.HTML(http.StatusOK, "cart.html", page(c, "Cart", gin.H{"Cart": cart}))
}
