package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const metricsNamespace = "quotebook"

// QuoteMetrics exposes domain counters to Prometheus. It implements
// ports.QuoteMetrics.
type QuoteMetrics struct {
	viewed    prometheus.Counter
	reactions *prometheus.CounterVec
	submitted *prometheus.CounterVec
	imported  *prometheus.CounterVec
}

var _ ports.QuoteMetrics = (*QuoteMetrics)(nil)

// NewQuoteMetrics registers the domain counters with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	factory := promauto.With(reg)

	return &QuoteMetrics{
		viewed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "quotes_viewed_total",
			Help:      "Quotes served by the weighted random pick.",
		}),
		reactions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reactions_total",
			Help:      "Likes and dislikes recorded.",
		}, []string{"kind"}),
		submitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "submissions_total",
			Help:      "Quote submissions by outcome.",
		}, []string{"outcome"}),
		imported: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "imports_total",
			Help:      "Quotes fetched from the remote catalog by outcome.",
		}, []string{"outcome"}),
	}
}

// QuoteViewed counts one served quote.
func (m *QuoteMetrics) QuoteViewed() {
	m.viewed.Inc()
}

// QuoteReacted counts one reaction of kind.
func (m *QuoteMetrics) QuoteReacted(kind domain.Reaction) {
	m.reactions.WithLabelValues(string(kind)).Inc()
}

// QuoteSubmitted counts one submission.
func (m *QuoteMetrics) QuoteSubmitted(outcome string) {
	m.submitted.WithLabelValues(outcome).Inc()
}

// QuoteImported counts one imported quote.
func (m *QuoteMetrics) QuoteImported(outcome string) {
	m.imported.WithLabelValues(outcome).Inc()
}
