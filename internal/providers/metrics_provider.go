package providers

import (
	"errors"
	"fmt"
	"io"
	"nellis/internal/models"
	"nellis/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

type MetricsProviderInterface interface {
	IncOperationsTotal(page, op string, err error)
	ObserveOperationDuration(op string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	SetRecordsTotal(page string, count int)
	WriteText(w io.Writer) error
}

type MetricsProvider struct {
	registry          *prometheus.Registry
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	recordsTotal      *prometheus.GaugeVec
}

func (m *MetricsProvider) IncOperationsTotal(page, op string, err error) {
	m.operationsTotal.WithLabelValues(page, op, resultLabel(err)).Inc()
}

func (m *MetricsProvider) ObserveOperationDuration(op string, duration time.Duration) {
	m.operationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) SetRecordsTotal(page string, count int) {
	m.recordsTotal.WithLabelValues(page).Set(float64(count))
}

// WriteText dumps the registry in the Prometheus text exposition format.
func (m *MetricsProvider) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func (m *MetricsProvider) Registry() *prometheus.Registry {
	return m.registry
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrValidation):
		return "invalid"
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,

		operationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nellis_operations_total",
			Help: "Total number of collection operations",
		}, []string{"page", "op", "result"}),

		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nellis_operation_duration_seconds",
			Help:    "Collection operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "nellis_cache_hits_total",
			Help: "Total number of render cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "nellis_cache_misses_total",
			Help: "Total number of render cache misses",
		}),

		recordsTotal: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "nellis_records_total",
			Help: "Current number of records per page",
		}, []string{"page"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncOperationsTotal(_, _ string, _ error)          {}
func (n *noopMetrics) ObserveOperationDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                      {}
func (n *noopMetrics) IncCacheMisses()                                    {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                    {}
func (n *noopMetrics) WriteText(w io.Writer) error {
	_, err := io.WriteString(w, "metrics disabled\n")
	return err
}
