package login

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-login/sparql"
)

var (
	// loginsTotal counts credential checks by outcome.
	loginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_service_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// sessionLookupsTotal counts session resolutions by outcome.
	sessionLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_service_session_lookups_total",
			Help: "Session resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// storeRequestDuration records triple store round-trips in seconds.
	storeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "login_service_store_request_duration_seconds",
			Help:    "SPARQL store round-trip duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		loginsTotal,
		sessionLookupsTotal,
		storeRequestDuration,
	)
}

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeError   = "error"
)

type meteredStoreClient struct {
	next StoreClient
}

// MeterStoreClient decorates a store client with round-trip metrics.
func MeterStoreClient(next StoreClient) StoreClient {
	return &meteredStoreClient{next: next}
}

func (m *meteredStoreClient) Query(ctx context.Context, query string) (res *sparql.Results, err error) {
	defer observeStore("query", time.Now(), &err)
	return m.next.Query(ctx, query)
}

func (m *meteredStoreClient) Update(ctx context.Context, update string) (err error) {
	defer observeStore("update", time.Now(), &err)
	return m.next.Update(ctx, update)
}

func observeStore(operation string, start time.Time, err *error) {
	status := outcomeSuccess
	if *err != nil {
		status = outcomeError
	}
	storeRequestDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}
