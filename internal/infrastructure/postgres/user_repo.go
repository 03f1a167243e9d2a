package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, password_hash, color, created_at`

	row := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Color)
	created, err := scanUser(row)
	if err != nil {
		if code, _ := pgCode(err); code == codeUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, color, created_at
		FROM users
		WHERE LOWER(email) = LOWER($1)`

	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, color, created_at
		FROM users
		WHERE id = $1`

	return scanUser(r.db.QueryRow(ctx, query, id))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Color, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
