package httptransport_test

import (
	"context"
	"strings"
	"sync"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]*domain.User{}}
}

func (m *memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, domain.ErrEmailTaken
		}
	}
	m.nextID++
	out := *u
	out.ID = m.nextID
	m.byID[out.ID] = &out
	return &out, nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

type memProducts struct {
	products []*domain.Product
}

func (m *memProducts) List(_ context.Context, limit int) ([]*domain.Product, error) {
	if limit > 0 && limit < len(m.products) {
		return m.products[:limit], nil
	}
	return m.products, nil
}

func (m *memProducts) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

type cartKey struct{ user, product int64 }

type memCarts struct {
	mu       sync.Mutex
	users    *memUsers
	products *memProducts
	qty      map[cartKey]int
}

func newMemCarts(users *memUsers, products *memProducts) *memCarts {
	return &memCarts{users: users, products: products, qty: map[cartKey]int{}}
}

func (m *memCarts) Add(ctx context.Context, userID, productID int64, quantity int) (*domain.CartItem, error) {
	if _, err := m.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := m.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	k := cartKey{userID, productID}
	m.qty[k] += quantity
	return &domain.CartItem{UserID: userID, ProductID: productID, Quantity: m.qty[k]}, nil
}

func (m *memCarts) ListLines(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var lines []domain.CartLine
	for _, p := range m.products.products {
		if q := m.qty[cartKey{userID, p.ID}]; q > 0 {
			lines = append(lines, domain.CartLine{Product: *p, Quantity: q})
		}
	}
	return lines, nil
}

func (m *memCarts) quantity(userID, productID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.qty[cartKey{userID, productID}]
}

type memTravel struct {
	mu        sync.Mutex
	countries map[string]string // lower-case name -> code
	visited   map[int64][]string
}

func newMemTravel() *memTravel {
	return &memTravel{
		countries: map[string]string{"france": "FR", "japan": "JP", "kenya": "KE"},
		visited:   map[int64][]string{},
	}
}

func (m *memTravel) AddVisitedByName(_ context.Context, userID int64, name string) (*domain.Country, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.countries[strings.ToLower(name)]
	if !ok {
		return nil, domain.ErrCountryNotFound
	}
	for _, c := range m.visited[userID] {
		if c == code {
			return nil, domain.ErrCountryAlreadyVisited
		}
	}
	m.visited[userID] = append(m.visited[userID], code)
	return &domain.Country{Code: code, Name: name}, nil
}

func (m *memTravel) ListVisitedCodes(_ context.Context, userID int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.visited[userID]...), nil
}
