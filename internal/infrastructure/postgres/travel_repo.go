package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

type TravelRepository struct {
	db     DB
	logger *slog.Logger
}

func NewTravelRepository(db DB, logger *slog.Logger) *TravelRepository {
	return &TravelRepository{db: db, logger: logger.With("component", "travel_repo")}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *TravelRepository) AddVisitedByName(ctx context.Context, userID int64, countryName string) (*domain.Country, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "rollback add visited country", "error", rbErr)
		}
	}()

	// Exact (case-insensitive) matches win over partial ones, then the
	// shortest name. FOR SHARE keeps the row from vanishing before the insert.
	lookup := `
		SELECT id, country_code, country_name
		FROM countries
		WHERE country_name ILIKE '%' || $1::text || '%'
		ORDER BY (LOWER(country_name) = LOWER($2::text)) DESC, LENGTH(country_name), country_name
		LIMIT 1
		FOR SHARE`

	var c domain.Country
	err = tx.QueryRow(ctx, lookup, likeEscaper.Replace(countryName), countryName).Scan(&c.ID, &c.Code, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("lookup country: %w", err)
	}

	insert := `
		INSERT INTO visited_countries (user_id, country_code)
		VALUES ($1, $2)
		ON CONFLICT (user_id, country_code) DO NOTHING
		RETURNING id`

	var visitID int64
	err = tx.QueryRow(ctx, insert, userID, c.Code).Scan(&visitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryAlreadyVisited
		}
		if code, _ := pgCode(err); code == codeForeignKeyViolation {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert visited country: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit visited country: %w", err)
	}
	return &c, nil
}

func (r *TravelRepository) ListVisitedCodes(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT country_code FROM visited_countries WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list visited countries: %w", err)
	}
	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect visited countries: %w", err)
	}
	return codes, nil
}
