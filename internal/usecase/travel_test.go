package usecase_test

import (
	"context"
	"testing"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverview(t *testing.T) {
	users := &fakeUserRepo{findByID: func(_ context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Name: "Ada", Color: "coral"}, nil
	}}
	travel := &fakeTravelRepo{listVisitedCodes: func(context.Context, int64) ([]string, error) {
		return []string{"FR", "JP"}, nil
	}}

	o, err := usecase.NewTravelUsecase(users, travel).Overview(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "coral", o.User.Color)
	assert.Equal(t, []string{"FR", "JP"}, o.Countries)
	assert.Equal(t, 2, o.Total())
}

func TestAddVisitedCountry_TrimsName(t *testing.T) {
	var got string
	travel := &fakeTravelRepo{addVisitedByName: func(_ context.Context, _ int64, name string) (*domain.Country, error) {
		got = name
		return &domain.Country{Code: "FR", Name: "France"}, nil
	}}

	c, err := usecase.NewTravelUsecase(nil, travel).AddVisitedCountry(context.Background(), 1, "  France\t")
	require.NoError(t, err)
	assert.Equal(t, "France", got)
	assert.Equal(t, "FR", c.Code)
}

func TestAddVisitedCountry_EmptyName(t *testing.T) {
	travel := &fakeTravelRepo{addVisitedByName: func(context.Context, int64, string) (*domain.Country, error) {
		t.Fatal("repository called for empty name")
		return nil, nil
	}}

	_, err := usecase.NewTravelUsecase(nil, travel).AddVisitedCountry(context.Background(), 1, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddVisitedCountry_PropagatesDomainErrors(t *testing.T) {
	for _, want := range []error{domain.ErrCountryNotFound, domain.ErrCountryAlreadyVisited} {
		travel := &fakeTravelRepo{addVisitedByName: func(context.Context, int64, string) (*domain.Country, error) {
			return nil, want
		}}

		_, err := usecase.NewTravelUsecase(nil, travel).AddVisitedCountry(context.Background(), 1, "Atlantis")
		assert.ErrorIs(t, err, want)
	}
}
