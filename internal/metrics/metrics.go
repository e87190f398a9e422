// Package metrics defines the prometheus instrumentation for the session.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TypesMatched counts match queries that found at least one plugin.
	TypesMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weave_types_matched_total",
		Help: "Number of types matched by at least one plugin.",
	})

	// TypesUnresolved counts match queries for names without a class file.
	TypesUnresolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weave_types_unresolved_total",
		Help: "Number of match queries for names that resolved to no class file.",
	})

	// TypesTransformed counts plugin applications per plugin.
	TypesTransformed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weave_types_transformed_total",
		Help: "Number of types each plugin transformed.",
	}, []string{"plugin"})
)

// Expose serves the /metrics endpoint on the given address for the duration
// of the build. Exposure is best-effort; a busy port does not fail the run.
func Expose(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		_ = server.ListenAndServe()
	}()
}
