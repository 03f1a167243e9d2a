package middleware_test

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/auth"
	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/reqctx"
	"github.com/ErlanBelekov/wanderstore/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testKey = "middleware-test-secret-32-chars!!"

var discard = slog.New(slog.DiscardHandler)

func init() {
	gin.SetMode(gin.TestMode)
}

func newManager() *auth.Manager {
	return auth.NewManager([]byte(testKey), time.Hour)
}

// newEngine protects GET /protected with RequireIdentity and exposes
// GET /open behind OptionalIdentity. Both echo the identity from the request
// context so tests can assert what the handler saw.
func newEngine(m *auth.Manager) *gin.Engine {
	r := gin.New()
	echo := func(c *gin.Context) {
		id, ok := reqctx.Identity(c.Request.Context())
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%d:%s", id.UserID, id.Email)
	}
	r.GET("/protected", middleware.RequireIdentity(m, discard), echo)
	r.GET("/open", middleware.OptionalIdentity(m, discard), echo)
	return r
}

func issue(t *testing.T, m *auth.Manager, id domain.Identity) string {
	t.Helper()
	tok, _, err := m.Issue(id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	r.ServeHTTP(w, req)
	return w
}

func assertRedirectToLogin(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestRequireIdentity_MissingCookie_RedirectsToLogin(t *testing.T) {
	assertRedirectToLogin(t, get(newEngine(newManager()), "/protected", ""))
}

func TestRequireIdentity_HeaderIsNotATransport(t *testing.T) {
	m := newManager()
	tok := issue(t, m, domain.Identity{UserID: 1, Email: "a@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	newEngine(m).ServeHTTP(w, req)

	assertRedirectToLogin(t, w)
}

func TestRequireIdentity_MalformedToken_RedirectsToLogin(t *testing.T) {
	assertRedirectToLogin(t, get(newEngine(newManager()), "/protected", "not.a.jwt"))
}

func TestRequireIdentity_ExpiredToken_RedirectsToLogin(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	old := auth.NewManager([]byte(testKey), time.Hour, auth.WithClock(func() time.Time { return past }))
	tok := issue(t, old, domain.Identity{UserID: 1, Email: "a@example.com"})

	assertRedirectToLogin(t, get(newEngine(newManager()), "/protected", tok))
}

func TestRequireIdentity_WrongSigningKey_RedirectsToLogin(t *testing.T) {
	other := auth.NewManager([]byte("different-key-that-is-32-chars!!"), time.Hour)
	tok := issue(t, other, domain.Identity{UserID: 1, Email: "a@example.com"})

	assertRedirectToLogin(t, get(newEngine(newManager()), "/protected", tok))
}

func TestRequireIdentity_UnsignedToken_RedirectsToLogin(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  1,
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	assertRedirectToLogin(t, get(newEngine(newManager()), "/protected", tok))
}

func TestRequireIdentity_ValidToken_AttachesIdentity(t *testing.T) {
	m := newManager()
	tok := issue(t, m, domain.Identity{UserID: 42, Email: "ada@example.com"})

	w := get(newEngine(m), "/protected", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "42:ada@example.com" {
		t.Errorf("body = %q", got)
	}
}

func TestOptionalIdentity(t *testing.T) {
	m := newManager()
	r := newEngine(m)

	if got := get(r, "/open", "").Body.String(); got != "anonymous" {
		t.Errorf("no cookie: body = %q, want anonymous", got)
	}
	if got := get(r, "/open", "garbage").Body.String(); got != "anonymous" {
		t.Errorf("bad cookie: body = %q, want anonymous", got)
	}
	tok := issue(t, m, domain.Identity{UserID: 5, Email: "e@example.com"})
	if got := get(r, "/open", tok).Body.String(); got != "5:e@example.com" {
		t.Errorf("valid cookie: body = %q", got)
	}
}

// Two users hitting the server at the same time must each see only their own
// identity, however the requests interleave.
func TestRequireIdentity_ConcurrentUsersAreIsolated(t *testing.T) {
	m := newManager()

	r := gin.New()
	r.GET("/whoami", middleware.RequireIdentity(m, discard), func(c *gin.Context) {
		before, _ := reqctx.Identity(c.Request.Context())
		time.Sleep(time.Millisecond)
		after, _ := reqctx.Identity(c.Request.Context())
		if before != after {
			c.String(http.StatusConflict, "identity changed mid-request")
			return
		}
		c.String(http.StatusOK, "%d", after.UserID)
	})

	users := []domain.Identity{
		{UserID: 1, Email: "alice@example.com"},
		{UserID: 2, Email: "bob@example.com"},
	}
	tokens := make([]string, len(users))
	for i, u := range users {
		tokens[i] = issue(t, m, u)
	}

	const rounds = 50
	var wg sync.WaitGroup
	errs := make(chan error, rounds*len(users))
	for range rounds {
		for i, u := range users {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := get(r, "/whoami", tokens[i])
				want := fmt.Sprintf("%d", u.UserID)
				if w.Code != http.StatusOK || w.Body.String() != want {
					errs <- fmt.Errorf("user %d saw status=%d body=%q", u.UserID, w.Code, w.Body.String())
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
