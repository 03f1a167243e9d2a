package metrics

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ErlanBelekov/wanderstore/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wanderstore"

var (
	// Auth metrics

	LoginAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Login attempts, by outcome.",
	}, []string{"outcome"})

	RegistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Registration attempts, by outcome.",
	}, []string{"outcome"})

	TokenRejectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Requests carrying a token that failed verification.",
	})

	// Domain metrics

	CartAdditionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_additions_total",
		Help:      "Successful add-to-cart actions.",
	})

	VisitedCountriesAddedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "visited_countries_added_total",
		Help:      "Add-visited-country actions, by outcome.",
	}, []string{"outcome"})

	ProductCacheRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_cache_requests_total",
		Help:      "Product cache lookups, by result (hit, miss, error).",
	}, []string{"result"})

	// Stats gauges, refreshed by the stats collector

	UsersTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users",
		Help:      "Registered users.",
	})

	ProductsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "products",
		Help:      "Products in the catalogue.",
	})

	CartItemsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cart_items",
		Help:      "Units sitting in carts across all users.",
	})

	VisitedCountriesTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "visited_countries",
		Help:      "Visited-country records across all users.",
	})

	StatsRefreshErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_refresh_errors_total",
		Help:      "Failed stats collection runs.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		LoginAttemptsTotal,
		RegistrationsTotal,
		TokenRejectionsTotal,
		CartAdditionsTotal,
		VisitedCountriesAddedTotal,
		ProductCacheRequestsTotal,
		UsersTotal,
		ProductsTotal,
		CartItemsTotal,
		VisitedCountriesTotal,
		StatsRefreshErrorsTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

type healthChecker interface {
	Liveness(ctx context.Context) health.HealthResult
	Readiness(ctx context.Context) health.HealthResult
}

// NewServer exposes /metrics, /livez and /readyz on a separate port.
func NewServer(addr string, checker healthChecker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Readiness(r.Context()))
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, res health.HealthResult) {
	status := http.StatusOK
	if res.Status != "up" {
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}
