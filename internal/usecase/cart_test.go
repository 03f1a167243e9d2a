package usecase_test

import (
	"context"
	"testing"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_RejectsOutOfRangeQuantity(t *testing.T) {
	repo := &fakeCartRepo{add: func(context.Context, int64, int64, int) (*domain.CartItem, error) {
		t.Fatal("repository called for invalid quantity")
		return nil, nil
	}}
	uc := usecase.NewCartUsecase(repo)

	for _, q := range []int{0, -1, usecase.MaxCartQuantity + 1, 3_000_000_000} {
		_, err := uc.AddToCart(context.Background(), usecase.AddToCartInput{UserID: 1, ProductID: 1, Quantity: q})
		assert.ErrorIs(t, err, domain.ErrValidation, "quantity %d", q)
	}
}

func TestAddToCart_PassesIdentityThrough(t *testing.T) {
	var gotUser, gotProduct int64
	var gotQty int
	repo := &fakeCartRepo{add: func(_ context.Context, userID, productID int64, qty int) (*domain.CartItem, error) {
		gotUser, gotProduct, gotQty = userID, productID, qty
		return &domain.CartItem{UserID: userID, ProductID: productID, Quantity: qty}, nil
	}}

	item, err := usecase.NewCartUsecase(repo).AddToCart(context.Background(), usecase.AddToCartInput{
		UserID: 3, ProductID: 11, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), gotUser)
	assert.Equal(t, int64(11), gotProduct)
	assert.Equal(t, 2, gotQty)
	assert.Equal(t, 2, item.Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	repo := &fakeCartRepo{add: func(context.Context, int64, int64, int) (*domain.CartItem, error) {
		return nil, domain.ErrProductNotFound
	}}

	_, err := usecase.NewCartUsecase(repo).AddToCart(context.Background(), usecase.AddToCartInput{
		UserID: 1, ProductID: 404, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetCart(t *testing.T) {
	repo := &fakeCartRepo{listLines: func(_ context.Context, userID int64) ([]domain.CartLine, error) {
		return []domain.CartLine{{Product: domain.Product{ID: 1, PriceCents: 250}, Quantity: 4}}, nil
	}}

	cart, err := usecase.NewCartUsecase(repo).GetCart(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(8), cart.UserID)
	assert.Equal(t, int64(1000), cart.TotalCents())
}
