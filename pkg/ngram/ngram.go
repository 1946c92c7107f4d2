// Package ngram builds word n-grams from pre-tokenized text. It performs no
// tokenization or normalization of its own: the input is an ordered sequence
// of opaque tokens, and the output is every contiguous window of the requested
// lengths rendered as a single string.
package ngram

import "strings"

// DefaultDelimiter joins the tokens of a multi-word gram when the caller does
// not specify a delimiter.
const DefaultDelimiter = " "

// Generate builds the n-grams for every length in nRange, in the order the
// lengths are given. For each length the window slides left to right one token
// at a time, so the output is all grams for nRange[0] first, then nRange[1],
// and so on, each block in ascending window-start order.
//
// Lengths that are zero, negative or larger than the token count contribute no
// grams; they are skipped silently rather than reported.
//
// Unigrams are appended without copying and share the backing storage of the
// input tokens. Callers that must not retain the input's storage (for example
// when tokens are substrings of a large decoded buffer) should use
// GenerateOwned instead.
func Generate(tokens []string, nRange []int, delimiter string) []string {
	return generate(tokens, nRange, delimiter, false)
}

// GenerateOwned is Generate with every gram returned as an independent owned
// string. Multi-word grams are freshly allocated either way; unigrams are
// cloned here so the result never pins the input tokens' backing arrays.
func GenerateOwned(tokens []string, nRange []int, delimiter string) []string {
	return generate(tokens, nRange, delimiter, true)
}

func generate(tokens []string, nRange []int, delimiter string, owned bool) []string {
	total := 0
	for _, n := range nRange {
		if n >= 1 && n <= len(tokens) {
			total += len(tokens) - n + 1
		}
	}
	if total == 0 {
		return nil
	}

	grams := make([]string, 0, total)
	for _, n := range nRange {
		if n < 1 || n > len(tokens) {
			continue
		}
		switch n {
		case 1:
			if owned {
				for _, tok := range tokens {
					grams = append(grams, strings.Clone(tok))
				}
			} else {
				grams = append(grams, tokens...)
			}
		case 2:
			// Bigrams dominate batch workloads, so the pair is concatenated
			// into an allocation pre-sized to its exact final length.
			for i := 0; i+2 <= len(tokens); i++ {
				grams = append(grams, joinPair(tokens[i], tokens[i+1], delimiter))
			}
		default:
			for i := 0; i+n <= len(tokens); i++ {
				grams = append(grams, strings.Join(tokens[i:i+n], delimiter))
			}
		}
	}
	return grams
}

func joinPair(a, b, delimiter string) string {
	var sb strings.Builder
	sb.Grow(len(a) + len(delimiter) + len(b))
	sb.WriteString(a)
	sb.WriteString(delimiter)
	sb.WriteString(b)
	return sb.String()
}
