package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/bnema/prefbot/internal/domain"
	"github.com/bnema/prefbot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "prefbot"

// Recorder counts handled triggers by resulting state and role mutations by
// outcome. It owns its registry so tests and multiple instances never clash
// on the global one.
type Recorder struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	mutations   *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

var _ ports.TransitionObserver = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Handled commands and button presses by trigger and resulting state.",
		}, []string{"trigger", "state"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "role_mutations_total",
			Help:      "Role gateway calls by operation and result.",
		}, []string{"op", "result"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "role_mutation_duration_seconds",
			Help:      "Role gateway call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}

	r.registry.MustRegister(
		r.transitions,
		r.mutations,
		r.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) ObserveTransition(trigger string, state domain.State) {
	r.transitions.WithLabelValues(trigger, string(state)).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen for metrics on %s: %w", addr, err)
	}

	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", "addr", listener.Addr().String())
	if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve metrics: %w", err)
	}

	return nil
}

// InstrumentGateway wraps gateway so every call is counted and timed.
func (r *Recorder) InstrumentGateway(gateway ports.RoleGateway) ports.RoleGateway {
	return &instrumentedGateway{next: gateway, recorder: r}
}

type instrumentedGateway struct {
	next     ports.RoleGateway
	recorder *Recorder
}

func (g *instrumentedGateway) AddRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error {
	return g.observe("add", func() error { return g.next.AddRoles(ctx, userID, roleIDs) })
}

func (g *instrumentedGateway) RemoveRoles(ctx context.Context, userID domain.UserID, roleIDs []domain.RoleID) error {
	return g.observe("remove", func() error { return g.next.RemoveRoles(ctx, userID, roleIDs) })
}

func (g *instrumentedGateway) observe(op string, call func() error) error {
	timer := prometheus.NewTimer(g.recorder.latency.WithLabelValues(op))
	err := call()
	timer.ObserveDuration()

	result := "ok"
	if err != nil {
		result = "error"
	}
	g.recorder.mutations.WithLabelValues(op, result).Inc()

	return err
}
