package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type CartRepository struct {
	db DB
}

func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity   = cart_items.quantity + EXCLUDED.quantity,
		              updated_at = NOW()
		RETURNING id, user_id, product_id, quantity, created_at, updated_at`

	var item domain.CartItem
	err := r.db.QueryRow(ctx, query, userID, productID, quantity).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		switch code, constraint := pgCode(err); code {
		case codeForeignKeyViolation:
			if constraint == "cart_items_user_id_fkey" {
				return nil, domain.ErrUserNotFound
			}
			return nil, domain.ErrProductNotFound
		case codeNumericOutOfRange:
			return nil, fmt.Errorf("%w: quantity is too large", domain.ErrValidation)
		}
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &item, nil
}

func (r *CartRepository) ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	query := `
		SELECT p.id, p.name, p.description, p.price_cents, p.image_url, c.quantity
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var l domain.CartLine
		if err := rows.Scan(
			&l.Product.ID, &l.Product.Name, &l.Product.Description,
			&l.Product.PriceCents, &l.Product.ImageURL, &l.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart: %w", err)
	}
	return lines, nil
}
