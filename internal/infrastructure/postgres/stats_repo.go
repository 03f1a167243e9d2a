package postgres

import (
	"context"
	"fmt"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (domain.Stats, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM users),
		       (SELECT COUNT(*) FROM products),
		       (SELECT COALESCE(SUM(quantity), 0) FROM cart_items),
		       (SELECT COUNT(*) FROM visited_countries)`

	var s domain.Stats
	if err := r.db.QueryRow(ctx, query).Scan(&s.Users, &s.Products, &s.CartItems, &s.VisitedCountries); err != nil {
		return domain.Stats{}, fmt.Errorf("count stats: %w", err)
	}
	return s, nil
}
