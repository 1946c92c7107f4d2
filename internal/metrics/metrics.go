// Package metrics exposes the batch-processing counters on the default
// prometheus registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowsProcessed counts every input row the batch service handled,
	// degraded rows included.
	RowsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngram_rows_processed_total",
		Help: "Total number of input rows processed",
	})

	// RowsDegraded counts rows that could not be interpreted as token
	// sequences and were mapped to an empty gram list.
	RowsDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngram_rows_degraded_total",
		Help: "Total number of rows degraded to an empty result",
	})

	// GramsEmitted counts every generated gram across all rows.
	GramsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ngram_grams_emitted_total",
		Help: "Total number of n-grams emitted",
	})
)
