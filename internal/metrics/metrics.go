// Package metrics exposes Prometheus counters and a small sidecar listener
// for /metrics and /healthz, kept off the public port.
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BetsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightpicks_bets_submitted_total",
		Help: "Bet rows appended to the ledger.",
	})

	ScoringPasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightpicks_scoring_passes_total",
		Help: "Settlement passes run after recording event results.",
	})

	BetsSettled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fightpicks_bets_settled_total",
		Help: "Bets settled by outcome.",
	}, []string{"outcome"})

	LeaderboardCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightpicks_leaderboard_cache_hits_total",
		Help: "Leaderboard reads served from Redis.",
	})

	LeaderboardCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fightpicks_leaderboard_cache_misses_total",
		Help: "Leaderboard reads that fell through to the database.",
	})
)

type HealthFunc func(ctx context.Context) error

// StartServer runs a lightweight HTTP server for /metrics and /healthz in a
// background goroutine and returns it for shutdown.
func StartServer(port string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()

		if err := healthFn(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return srv
}
