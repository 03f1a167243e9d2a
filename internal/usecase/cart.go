package usecase

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/repository"
)

// MaxCartQuantity bounds a single add-to-cart request.
const MaxCartQuantity = 1000

type CartUsecase struct {
	carts repository.CartRepository
}

func NewCartUsecase(carts repository.CartRepository) *CartUsecase {
	return &CartUsecase{carts: carts}
}

type AddToCartInput struct {
	UserID    int64
	ProductID int64
	Quantity  int
}

// AddToCart adds quantity units of a product to the user's cart. Adding a
// product already in the cart increments its line.
func (u *CartUsecase) AddToCart(ctx context.Context, input AddToCartInput) (*domain.CartItem, error) {
	if input.Quantity <= 0 || input.Quantity > MaxCartQuantity {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrValidation, MaxCartQuantity)
	}
	if input.ProductID <= 0 {
		return nil, fmt.Errorf("add to cart: %w", domain.ErrProductNotFound)
	}

	item, err := u.carts.Add(ctx, input.UserID, input.ProductID, input.Quantity)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	metrics.CartAdditionsTotal.Inc()
	return item, nil
}

func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (*domain.Cart, error) {
	lines, err := u.carts.ListLines(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return &domain.Cart{UserID: userID, Lines: lines}, nil
}
