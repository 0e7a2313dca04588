package iso8583

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "iso8583"

// Metrics holds the processor counters and histograms.
type Metrics struct {
	MessagesParsed *prometheus.CounterVec
	ParseErrors    *prometheus.CounterVec
	MessageSize    *prometheus.HistogramVec
	ParseDuration  *prometheus.HistogramVec
}

// NewMetrics creates processor metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "messages_parsed_total",
			Help:      "Total number of messages parsed successfully",
		}, []string{"spec"}),

		ParseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "parse_errors_total",
			Help:      "Total number of messages that failed to parse, by error kind",
		}, []string{"spec", "kind"}),

		MessageSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "message_size_bytes",
			Help:      "Size of processed messages in bytes",
			Buckets:   prometheus.ExponentialBuckets(32, 2, 8),
		}, []string{"spec"}),

		ParseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "parse_duration_seconds",
			Help:      "Time spent parsing a single message",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		}, []string{"spec"}),
	}

	if reg != nil {
		reg.MustRegister(m.MessagesParsed, m.ParseErrors, m.MessageSize, m.ParseDuration)
	}
	return m
}

// RecordParse records the outcome of one parse.
func (m *Metrics) RecordParse(spec string, size int, took time.Duration, err error) {
	if m == nil {
		return
	}
	m.MessageSize.WithLabelValues(spec).Observe(float64(size))
	m.ParseDuration.WithLabelValues(spec).Observe(took.Seconds())
	if err != nil {
		m.ParseErrors.WithLabelValues(spec, ErrorKind(err)).Inc()
		return
	}
	m.MessagesParsed.WithLabelValues(spec).Inc()
}

// ErrorKind classifies err as "parse", "spec", "build" or "other".
func ErrorKind(err error) string {
	var (
		pe *ParseError
		se *SpecError
		be *BuildError
	)
	switch {
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &se):
		return "spec"
	case errors.As(err, &be):
		return "build"
	default:
		return "other"
	}
}
