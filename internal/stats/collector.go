package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/wanderstore/internal/domain"
	"github.com/ErlanBelekov/wanderstore/internal/metrics"
	"github.com/robfig/cron/v3"
)

type Counter interface {
	Counts(ctx context.Context) (domain.Stats, error)
}

// Collector refreshes the whole-database gauges on a cron schedule.
type Collector struct {
	repo     Counter
	schedule cron.Schedule
	logger   *slog.Logger
	now      func() time.Time
}

// NewCollector parses spec as a standard cron expression or descriptor
// such as "@every 1m".
func NewCollector(repo Counter, spec string, logger *slog.Logger) (*Collector, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse stats schedule %q: %w", spec, err)
	}
	return &Collector{
		repo:     repo,
		schedule: sched,
		logger:   logger.With("component", "stats"),
		now:      time.Now,
	}, nil
}

// Start collects once immediately, then on every schedule tick until ctx is done.
func (c *Collector) Start(ctx context.Context) {
	c.logger.Info("stats collector started")
	c.Collect(ctx)

	for {
		wait := c.schedule.Next(c.now()).Sub(c.now())
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			c.logger.Info("stats collector shut down")
			return
		case <-timer.C:
			c.Collect(ctx)
		}
	}
}

func (c *Collector) Collect(ctx context.Context) {
	s, err := c.repo.Counts(ctx)
	if err != nil {
		if ctx.Err() == nil {
			metrics.StatsRefreshErrorsTotal.Inc()
			c.logger.Error("collect stats", "error", err)
		}
		return
	}

	metrics.UsersTotal.Set(float64(s.Users))
	metrics.ProductsTotal.Set(float64(s.Products))
	metrics.CartItemsTotal.Set(float64(s.CartItems))
	metrics.VisitedCountriesTotal.Set(float64(s.VisitedCountries))
	c.logger.Debug("stats collected",
		"users", s.Users,
		"products", s.Products,
		"cart_items", s.CartItems,
		"visited_countries", s.VisitedCountries,
	)
}
