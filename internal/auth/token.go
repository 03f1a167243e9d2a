package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the only transport for credential tokens.
const CookieName = "token"

const DefaultTTL = time.Hour

type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Manager)

// WithClock overrides the time source used for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(secret []byte, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs an HS256 token for id that expires after the manager's TTL.
func (m *Manager) Issue(id domain.Identity) (string, time.Time, error) {
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		UserID: id.UserID,
		Email:  id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign jwt: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry. Every failure wraps
// domain.ErrTokenInvalid; the wrapped text carries the reason for logging.
func (m *Manager) Verify(raw string) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, fmt.Errorf("%w: empty token", domain.ErrTokenInvalid)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return domain.Identity{}, fmt.Errorf("%w: token not valid", domain.ErrTokenInvalid)
	}

	if claims.UserID <= 0 || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return domain.Identity{}, fmt.Errorf("%w: subject mismatch", domain.ErrTokenInvalid)
	}

	return domain.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
