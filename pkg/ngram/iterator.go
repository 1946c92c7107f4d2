package ngram

import (
	"iter"
	"strings"
)

// Iterator produces the same gram sequence as Generate one value at a time,
// without materializing the full result. It is not safe for concurrent use;
// construct a fresh Iterator per consumer.
type Iterator struct {
	tokens    []string
	nRange    []int
	delimiter string

	lengthIdx   int
	windowStart int
}

// NewIterator returns an iterator over the n-grams of tokens for the lengths
// in nRange. The iterator borrows tokens for its lifetime and, like Generate,
// returns unigrams without copying.
func NewIterator(tokens []string, nRange []int, delimiter string) *Iterator {
	return &Iterator{
		tokens:    tokens,
		nRange:    nRange,
		delimiter: delimiter,
	}
}

// Next returns the next gram in sequence, or ("", false) once exhausted.
// After exhaustion every further call keeps returning ("", false).
func (it *Iterator) Next() (string, bool) {
	for it.lengthIdx < len(it.nRange) {
		n := it.nRange[it.lengthIdx]

		if n < 1 || n > len(it.tokens) {
			it.lengthIdx++
			it.windowStart = 0
			continue
		}

		if it.windowStart+n <= len(it.tokens) {
			window := it.tokens[it.windowStart : it.windowStart+n]
			it.windowStart++

			switch n {
			case 1:
				return window[0], true
			case 2:
				return joinPair(window[0], window[1], it.delimiter), true
			default:
				return strings.Join(window, it.delimiter), true
			}
		}

		it.lengthIdx++
		it.windowStart = 0
	}
	return "", false
}

// All exposes the remaining grams as a range-over-func sequence:
//
//	for g := range ngram.NewIterator(toks, []int{2}, " ").All() { ... }
//
// It advances the same cursor as Next, so a broken range can be resumed.
func (it *Iterator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for g, ok := it.Next(); ok; g, ok = it.Next() {
			if !yield(g) {
				return
			}
		}
	}
}
