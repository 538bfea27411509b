package tagger

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/postag/vocabulary/pos"
)

// Metrics counts what the decoder ingests. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	words        *prometheus.CounterVec
	unrecognized prometheus.Counter
	sentences    prometheus.Counter
}

// NewMetrics creates the ingestion counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		words: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "postag",
			Subsystem: "ingest",
			Name:      "words_total",
			Help:      "Tagged words decoded, by POS tag.",
		}, []string{"tag"}),
		unrecognized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "postag",
			Subsystem: "ingest",
			Name:      "unrecognized_total",
			Help:      "Tokens whose tag column matched no POS tag.",
		}),
		sentences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "postag",
			Subsystem: "ingest",
			Name:      "sentences_total",
			Help:      "Sentences decoded.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.words, m.unrecognized, m.sentences)
	}
	return m
}

func (m *Metrics) observeWord(tag pos.Tag) {
	if m == nil {
		return
	}
	m.words.WithLabelValues(tag.String()).Inc()
}

func (m *Metrics) observeUnrecognized() {
	if m == nil {
		return
	}
	m.unrecognized.Inc()
}

func (m *Metrics) observeSentence() {
	if m == nil {
		return
	}
	m.sentences.Inc()
}
