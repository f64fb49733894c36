// Copyright (c) 2026 The raistlin authors
// released under the MIT license

package irc

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raistlinbot/raistlin/irc/logger"
)

// Metrics holds the bot's prometheus collectors. Each Metrics has its own
// registry, so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	LinesReceived         prometheus.Counter
	Commands              *prometheus.CounterVec
	CorrectionsSent       prometheus.Counter
	CorrectionsSuppressed prometheus.Counter
	ModelWords            prometheus.Gauge
	Sessions              prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LinesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raistlin_lines_received_total",
			Help: "Lines read from the server.",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "raistlin_commands_total",
			Help: "Recognized commands, by verb.",
		}, []string{"command"}),
		CorrectionsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raistlin_corrections_sent_total",
			Help: "Correction notes sent to the channel.",
		}),
		CorrectionsSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raistlin_corrections_suppressed_total",
			Help: "Correction notes not sent because they were sent recently.",
		}),
		ModelWords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "raistlin_model_words",
			Help: "Distinct words in the trained model.",
		}),
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raistlin_sessions_total",
			Help: "Connections made to the server.",
		}),
	}
	m.registry.MustRegister(
		m.LinesReceived,
		m.Commands,
		m.CorrectionsSent,
		m.CorrectionsSuppressed,
		m.ModelWords,
		m.Sessions,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs the /metrics listener on address until ctx is done.
func (m *Metrics) Serve(ctx context.Context, address string, logman *logger.Manager) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logman.Info(logger.TypeMetrics, "listening", address)
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
