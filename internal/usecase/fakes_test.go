package usecase_test

import (
	"context"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

var discardLogger = slog.New(slog.DiscardHandler)

type fakeUserRepo struct {
	create      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmail func(ctx context.Context, email string) (*domain.User, error)
	findByID    func(ctx context.Context, id int64) (*domain.User, error)
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return r.create(ctx, user)
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findByEmail(ctx, email)
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findByID(ctx, id)
}

type fakeIssuer struct {
	issue func(id domain.Identity) (string, time.Time, error)
}

func (f *fakeIssuer) Issue(id domain.Identity) (string, time.Time, error) {
	return f.issue(id)
}

type fakeEmailSender struct {
	send func(ctx context.Context, to, subject, body string) error
}

func (s *fakeEmailSender) Send(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, to, subject, body)
}

type fakeProductRepo struct {
	list    func(ctx context.Context, limit int) ([]*domain.Product, error)
	getByID func(ctx context.Context, id int64) (*domain.Product, error)
}

func (r *fakeProductRepo) List(ctx context.Context, limit int) ([]*domain.Product, error) {
	return r.list(ctx, limit)
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.getByID(ctx, id)
}

type fakeCartRepo struct {
	add       func(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error)
	listLines func(ctx context.Context, userID int64) ([]domain.CartLine, error)
}

func (r *fakeCartRepo) Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	return r.add(ctx, userID, productID, quantity)
}

func (r *fakeCartRepo) ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	return r.listLines(ctx, userID)
}

type fakeTravelRepo struct {
	addVisitedByName func(ctx context.Context, userID int64, name string) (*domain.Country, error)
	listVisitedCodes func(ctx context.Context, userID int64) ([]string, error)
}

func (r *fakeTravelRepo) AddVisitedByName(ctx context.Context, userID int64, name string) (*domain.Country, error) {
	return r.addVisitedByName(ctx, userID, name)
}

func (r *fakeTravelRepo) ListVisitedCodes(ctx context.Context, userID int64) ([]string, error) {
	return r.listVisitedCodes(ctx, userID)
}

// memCache is an in-memory cache.Cache that stores values by reference.
type memCache struct {
	values map[string]any
	getErr error
}

func newMemCache() *memCache { return &memCache{values: map[string]any{}} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]*domain.Product:
		*d = v.([]*domain.Product)
	case *domain.Product:
		*d = *v.(*domain.Product)
	}
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	c.values[key] = value
	return nil
}
