package domain

import "time"

type Country struct {
	ID   int64
	Code string
	Name string
}

type VisitedCountry struct {
	ID          int64
	UserID      int64
	CountryCode string
	CreatedAt   time.Time
}

// TravelOverview is everything the home view shows for one user.
type TravelOverview struct {
	User      *User
	Countries []string // country codes, ordered by when they were added
}

func (o *TravelOverview) Total() int {
	return len(o.Countries)
}

// Stats are whole-database counts exported as gauges.
type Stats struct {
	Users            int64
	Products         int64
	CartItems        int64
	VisitedCountries int64
}
