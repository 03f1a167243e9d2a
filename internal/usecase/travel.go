package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/ErlanBelekov/wanderstore/internal/repository"
)

type TravelUsecase struct {
	users  repository.UserRepository
	travel repository.TravelRepository
}

func NewTravelUsecase(users repository.UserRepository, travel repository.TravelRepository) *TravelUsecase {
	return &TravelUsecase{users: users, travel: travel}
}

func (u *TravelUsecase) Overview(ctx context.Context, userID int64) (*domain.TravelOverview, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	codes, err := u.travel.ListVisitedCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list visited: %w", err)
	}

	return &domain.TravelOverview{User: user, Countries: codes}, nil
}

// AddVisitedCountry resolves a free-text country name and records it for the
// user. Unknown names return domain.ErrCountryNotFound and insert nothing.
func (u *TravelUsecase) AddVisitedCountry(ctx context.Context, userID int64, name string) (*domain.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		metrics.VisitedCountriesAddedTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: country name is required", domain.ErrValidation)
	}

	country, err := u.travel.AddVisitedByName(ctx, userID, name)
	if err != nil {
		metrics.VisitedCountriesAddedTotal.WithLabelValues(domain.KindOf(err).String()).Inc()
		return nil, fmt.Errorf("add visited country: %w", err)
	}
	metrics.VisitedCountriesAddedTotal.WithLabelValues("added").Inc()
	return country, nil
}
