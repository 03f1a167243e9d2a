package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/gin-gonic/gin"
)

type catalogUsecaser interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	Featured(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type CatalogHandler struct {
	catalog catalogUsecaser
	logger  *slog.Logger
}

func NewCatalogHandler(catalog catalogUsecaser, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger.With("component", "catalog_handler")}
}

// GET /products
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err, errPageNotFound)
		return
	}
	c.HTML(http.StatusOK, "products.html", page(c, "Products", gin.H{"Products": products}))
}

// GET /product/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderError(c, h.logger, fmt.Errorf("parse product id: %w", domain.ErrProductNotFound), errProductNotFound)
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		renderError(c, h.logger, err, errProductNotFound)
		return
	}
	c.HTML(http.StatusOK, "product.html", page(c, product.Name, gin.H{"Product": product}))
}
