// seed fills the local dev database with countries, products and a demo user.
// Safe to re-run. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/wanderstore/internal/security"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const (
	demoEmail    = "demo@wanderstore.local"
	demoPassword = "wanderlust"
)

var countries = []struct{ code, name string }{
	{"AR", "Argentina"}, {"AU", "Australia"}, {"BR", "Brazil"}, {"CA", "Canada"},
	{"CN", "China"}, {"DE", "Germany"}, {"EG", "Egypt"}, {"ES", "Spain"},
	{"FR", "France"}, {"GB", "United Kingdom"}, {"GR", "Greece"}, {"IN", "India"},
	{"IS", "Iceland"}, {"IT", "Italy"}, {"JP", "Japan"}, {"KE", "Kenya"},
	{"KG", "Kyrgyzstan"}, {"KZ", "Kazakhstan"}, {"MA", "Morocco"}, {"MX", "Mexico"},
	{"NO", "Norway"}, {"NZ", "New Zealand"}, {"PE", "Peru"}, {"PT", "Portugal"},
	{"TH", "Thailand"}, {"TR", "Turkey"}, {"US", "United States of America"}, {"VN", "Vietnam"},
	{"ZA", "South Africa"},
}

var products = []domain.Product{
	{Name: "Trail Pack 40L", Description: "Lightweight backpack with a rain cover.", PriceCents: 8900},
	{Name: "Camp Stove", Description: "Compact gas stove, boils a litre in four minutes.", PriceCents: 2550},
	{Name: "Two-Person Tent", Description: "Freestanding three-season tent.", PriceCents: 18900},
	{Name: "Down Sleeping Bag", Description: "Comfort rated to -5°C.", PriceCents: 15900},
	{Name: "Travel Adapter", Description: "Works in more than 150 countries.", PriceCents: 1999},
	{Name: "Water Filter", Description: "Squeeze filter, 0.1 micron.", PriceCents: 3499},
	{Name: "Packing Cubes", Description: "Set of four compression cubes.", PriceCents: 2899},
	{Name: "Headlamp", Description: "350 lumens, USB rechargeable.", PriceCents: 3200},
	{Name: "Passport Wallet", Description: "RFID-blocking, fits boarding passes.", PriceCents: 1500},
	{Name: "Merino Socks", Description: "Two pairs, hike weight.", PriceCents: 2400},
}

var demoVisited = []string{"France", "Japan", "Kyrgyzstan"}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if _, err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		log.Fatalf("migrate: %v", err)
	}

	newCountries, err := seedCountries(ctx, pool)
	if err != nil {
		pool.Close()
		log.Fatalf("seed countries: %v", err)
	}

	newProducts, err := seedProducts(ctx, pool)
	if err != nil {
		pool.Close()
		log.Fatalf("seed products: %v", err)
	}

	user, err := seedDemoUser(ctx, pool)
	if err != nil {
		pool.Close()
		log.Fatalf("seed demo user: %v", err)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Countries: %d new (%d total)\n", newCountries, len(countries))
	fmt.Printf("  Products:  %d new (%d total)\n", newProducts, len(products))
	fmt.Printf("  Demo user: %s / %s (id %d)\n", demoEmail, demoPassword, user.ID)
	fmt.Println()
	fmt.Println("  Log in at http://localhost:3000/login")
}

func seedCountries(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var inserted int64
	for _, c := range countries {
		tag, err := pool.Exec(ctx, `
			INSERT INTO countries (country_code, country_name)
			VALUES ($1, $2)
			ON CONFLICT (country_code) DO NOTHING`,
			c.code, c.name,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert %s: %w", c.code, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// Products have no natural key, so existence is checked by name.
func seedProducts(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	var inserted int64
	for _, p := range products {
		tag, err := pool.Exec(ctx, `
			INSERT INTO products (name, description, price_cents, image_url)
			SELECT $1::text, $2::text, $3::bigint, $4::text
			WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1::text)`,
			p.Name, p.Description, p.PriceCents, p.ImageURL,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert %q: %w", p.Name, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

func seedDemoUser(ctx context.Context, pool *pgxpool.Pool) (*domain.User, error) {
	users := postgres.NewUserRepository(pool)

	hash, err := security.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	user, err := users.Create(ctx, &domain.User{
		Name:         "Demo Traveller",
		Email:        demoEmail,
		PasswordHash: hash,
		Color:        "teal",
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		user, err = users.FindByEmail(ctx, demoEmail)
	}
	if err != nil {
		return nil, err
	}

	travel := postgres.NewTravelRepository(pool, slog.Default())
	for _, name := range demoVisited {
		_, err := travel.AddVisitedByName(ctx, user.ID, name)
		if err != nil && !errors.Is(err, domain.ErrCountryAlreadyVisited) {
			return nil, fmt.Errorf("visit %s: %w", name, err)
		}
	}
	return user, nil
}
