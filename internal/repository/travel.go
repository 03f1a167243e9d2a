package repository

import (
	"context"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
)

type TravelRepository interface {
	// AddVisitedByName resolves countryName to a country and records the visit
	// in a single transaction. Returns domain.ErrCountryNotFound or
	// domain.ErrCountryAlreadyVisited without inserting anything.
	AddVisitedByName(ctx context.Context, userID int64, countryName string) (*domain.Country, error)
	ListVisitedCodes(ctx context.Context, userID int64) ([]string, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (domain.Stats, error)
}
