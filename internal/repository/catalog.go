package repository

import (
	"context"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type ProductRepository interface {
	// List returns products ordered by id. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type CartRepository interface {
	// Add inserts the item or increments the quantity of an existing line.
	// Returns domain.ErrProductNotFound if the product does not exist.
	Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error)
}
