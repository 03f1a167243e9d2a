package domain

import (
	"fmt"
	"time"
)

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url"`
}

func (p Product) Price() string {
	return formatCents(p.PriceCents)
}

type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine is a cart item joined with its product for display.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) TotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

func (l CartLine) Total() string {
	return formatCents(l.TotalCents())
}

type Cart struct {
	UserID int64
	Lines  []CartLine
}

func (c *Cart) TotalCents() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.TotalCents()
	}
	return sum
}

func (c *Cart) Total() string {
	return formatCents(c.TotalCents())
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
