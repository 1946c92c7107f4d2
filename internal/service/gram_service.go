package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"ngram-go/internal/metrics"
	"ngram-go/internal/model"
	"ngram-go/pkg/ngram"
)

// GramService bridges the core generator to a column-oriented batch context:
// a column of token-list rows goes in, a row-aligned column of gram lists
// comes out. Row failures never abort a batch.
type GramService struct {
	nRange     []int
	delimiter  string
	rowWorkers int
	logger     *zap.Logger
}

// NewGramService creates a gram service with the configured default n_range,
// delimiter and worker count. Callers may override n_range and delimiter per
// request; the worker count is fixed per service.
func NewGramService(nRange []int, delimiter string, rowWorkers int, logger *zap.Logger) *GramService {
	if rowWorkers < 1 {
		rowWorkers = 2
	}
	return &GramService{
		nRange:     nRange,
		delimiter:  delimiter,
		rowWorkers: rowWorkers,
		logger:     logger,
	}
}

// Params resolves per-request overrides against the configured defaults.
func (gs *GramService) Params(nRange []int, delimiter *string) ([]int, string) {
	if len(nRange) == 0 {
		nRange = gs.nRange
	}
	delim := gs.delimiter
	if delimiter != nil {
		delim = *delimiter
	}
	return nRange, delim
}

// GenerateRow generates the grams for a single token row. All results are
// owned strings, independent of the input row's storage.
func (gs *GramService) GenerateRow(tokens []string, nRange []int, delimiter string) []string {
	grams := ngram.GenerateOwned(tokens, nRange, delimiter)

	metrics.RowsProcessed.Inc()
	metrics.GramsEmitted.Add(float64(len(grams)))

	if grams == nil {
		grams = []string{}
	}
	return grams
}

// ProcessBatch generates grams for every row of a batch. Rows are distributed
// over a bounded worker pool and results are written back by row index, so the
// output is always row-aligned with the input regardless of scheduling.
//
// A row that cannot be interpreted as a token sequence degrades to an empty
// gram list. Cancelling ctx stops handing out further rows; rows not reached
// remain empty.
func (gs *GramService) ProcessBatch(ctx context.Context, rows [][]interface{}, nRange []int, delimiter string) [][]string {
	results := make([][]string, len(rows))

	jobs := make(chan int, 2)
	var wg sync.WaitGroup

	for w := 0; w < gs.rowWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = gs.processRow(rows[i], nRange, delimiter)
			}
		}()
	}

	cancelled := false
	for i := range rows {
		select {
		case <-ctx.Done():
			cancelled = true
		case jobs <- i:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		gs.logger.Warn("Batch cancelled before completion",
			zap.Int("rows", len(rows)),
			zap.Error(ctx.Err()))
	}

	for i := range results {
		if results[i] == nil {
			results[i] = []string{}
		}
	}
	return results
}

func (gs *GramService) processRow(values []interface{}, nRange []int, delimiter string) []string {
	tokens, ok := model.RowFromValues(values)
	if !ok {
		gs.logger.Debug("Row not interpretable as token sequence, emitting empty result",
			zap.Int("values", len(values)))
		metrics.RowsProcessed.Inc()
		metrics.RowsDegraded.Inc()
		return []string{}
	}

	return gs.GenerateRow(tokens, nRange, delimiter)
}
