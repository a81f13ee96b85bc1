// Package metrics provides Prometheus metrics of basket service.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records commands and price imports.
type Metrics struct {
	registry *prometheus.Registry

	commandsTotal   *prometheus.CounterVec
	commandDuration *prometheus.HistogramVec
	importRunsTotal *prometheus.CounterVec
	importedOffers  *prometheus.CounterVec
}

// New returns Metrics registered in its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "basket_commands_total",
				Help: "Total number of handled commands",
			},
			[]string{"command", "status"},
		),
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "basket_command_duration_seconds",
				Help:    "Duration of command handling",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5, 30},
			},
			[]string{"command"},
		),
		importRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "basket_import_runs_total",
				Help: "Total number of retailer price imports",
			},
			[]string{"retailer", "status"},
		),
		importedOffers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "basket_imported_offers_total",
				Help: "Total number of retailer feed offers by import result",
			},
			[]string{"retailer", "result"},
		),
	}

	m.registry.MustRegister(
		m.commandsTotal,
		m.commandDuration,
		m.importRunsTotal,
		m.importedOffers,
	)

	return m
}

// RecordCommand records handled command with its status.
func (m *Metrics) RecordCommand(command, status string, duration time.Duration) {
	m.commandsTotal.WithLabelValues(command, status).Inc()
	m.commandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordImport records finished price import with offer counters.
func (m *Metrics) RecordImport(retailer string, success bool, matched, unmatched, failed, deleted int32) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.importRunsTotal.WithLabelValues(retailer, status).Inc()

	m.importedOffers.WithLabelValues(retailer, "matched").Add(float64(matched))
	m.importedOffers.WithLabelValues(retailer, "unmatched").Add(float64(unmatched))
	m.importedOffers.WithLabelValues(retailer, "failed").Add(float64(failed))
	m.importedOffers.WithLabelValues(retailer, "deleted").Add(float64(deleted))
}

// Handler returns HTTP handler exposing metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ServeHTTP serves metrics on /metrics at addr until context is closed.
func (m *Metrics) ServeHTTP(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
