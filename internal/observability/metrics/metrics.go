// Package metrics exposes Prometheus instrumentation for the candidate store
// and the REST client. A CLI run has no scrape endpoint, so the registry can be
// flushed to a node_exporter textfile on exit.
package metrics

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	obserrors "github.com/mrraghuvarun/talent/internal/observability/errors"
)

const namespace = "talenthub"

// Result constants for metric labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Registry owns every collector. It is safe for concurrent use.
type Registry struct {
	reg *prometheus.Registry

	refreshTotal   *prometheus.CounterVec
	candidates     prometheus.Gauge
	mutationsTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec

	apiRequests *prometheus.CounterVec
	apiDuration *prometheus.HistogramVec
	apiInFlight prometheus.Gauge
}

// New builds a Registry with all collectors registered on a private registry.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_refresh_total",
			Help:      "Candidate list refreshes by outcome.",
		}, []string{"outcome"}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "candidates",
			Help:      "Number of candidates held after the last refresh.",
		}),
		mutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_mutations_total",
			Help:      "Promote, demote, remove and invite calls by outcome.",
		}, []string{"op", "outcome"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Failed commands by error class.",
		}, []string{"command", "error_class"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Outbound REST API requests.",
		}, []string{"code", "method"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Outbound REST API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
		apiInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_requests_in_flight",
			Help:      "Outbound REST API requests currently in flight.",
		}),
	}
	r.reg.MustRegister(
		r.refreshTotal, r.candidates, r.mutationsTotal, r.errorsTotal,
		r.apiRequests, r.apiDuration, r.apiInFlight,
	)
	return r
}

// ObserveRefresh records one candidate refresh. size is the list length held
// after the refresh was applied or discarded.
func (r *Registry) ObserveRefresh(outcome string, size int) {
	r.refreshTotal.WithLabelValues(outcome).Inc()
	r.candidates.Set(float64(size))
}

// ObserveMutation records one remote mutation.
func (r *Registry) ObserveMutation(op, outcome string) {
	r.mutationsTotal.WithLabelValues(op, outcome).Inc()
}

// ObserveError counts a failed command by its classified error.
func (r *Registry) ObserveError(command string, err error) {
	if err == nil {
		return
	}
	r.errorsTotal.WithLabelValues(command, obserrors.Classify(err)).Inc()
}

// InstrumentRoundTripper wraps next with request count, latency and in-flight
// instrumentation.
func (r *Registry) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperInFlight(r.apiInFlight,
		promhttp.InstrumentRoundTripperCounter(r.apiRequests,
			promhttp.InstrumentRoundTripperDuration(r.apiDuration, next),
		),
	)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the current metric values to path in the text
// exposition format. An empty path is a no-op.
func (r *Registry) WriteTextfile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
