package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context, limit int) ([]*domain.Product, error) {
	query := `
		SELECT id, name, description, price_cents, image_url
		FROM products
		ORDER BY id`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Query(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price_cents, image_url
		FROM products
		WHERE id = $1`

	return scanProduct(r.db.QueryRow(ctx, query, id))
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}
