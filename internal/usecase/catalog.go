package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ErlanBelekov/wanderstore/internal/cache"
	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/repository"
)

// FeaturedLimit is how many products the home page shows.
const FeaturedLimit = 8

type CatalogUsecase struct {
	products repository.ProductRepository
	cache    cache.Cache
	logger   *slog.Logger
}

func NewCatalogUsecase(products repository.ProductRepository, c cache.Cache, logger *slog.Logger) *CatalogUsecase {
	if c == nil {
		c = cache.Noop{}
	}
	return &CatalogUsecase{
		products: products,
		cache:    c,
		logger:   logger.With("component", "catalog"),
	}
}

func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return u.list(ctx, 0)
}

func (u *CatalogUsecase) Featured(ctx context.Context) ([]*domain.Product, error) {
	return u.list(ctx, FeaturedLimit)
}

func (u *CatalogUsecase) list(ctx context.Context, limit int) ([]*domain.Product, error) {
	key := "products:list:" + strconv.Itoa(limit)

	var cached []*domain.Product
	if u.lookup(ctx, key, &cached) {
		return cached, nil
	}

	products, err := u.products.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	u.store(ctx, key, products)
	return products, nil
}

// GetProduct returns domain.ErrProductNotFound for an unknown id.
func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("get product: %w", domain.ErrProductNotFound)
	}
	key := "products:id:" + strconv.FormatInt(id, 10)

	var cached domain.Product
	if u.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	u.store(ctx, key, product)
	return product, nil
}

// Cache failures degrade to a database read.
func (u *CatalogUsecase) lookup(ctx context.Context, key string, dst any) bool {
	hit, err := u.cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		metrics.ProductCacheRequestsTotal.WithLabelValues("error").Inc()
		u.logger.WarnContext(ctx, "product cache read failed", "key", key, "error", err)
		return false
	case hit:
		metrics.ProductCacheRequestsTotal.WithLabelValues("hit").Inc()
		return true
	default:
		metrics.ProductCacheRequestsTotal.WithLabelValues("miss").Inc()
		return false
	}
}

func (u *CatalogUsecase) store(ctx context.Context, key string, value any) {
	if err := u.cache.Set(ctx, key, value); err != nil {
		u.logger.WarnContext(ctx, "product cache write failed", "key", key, "error", err)
	}
}
