package main

import (
	"fmt"
	"runtime"
	"time"

	"ngram-go/pkg/ngram"
)

// GramDemo compares memory behavior of eager and lazy n-gram generation over
// the same corpus.
func GramDemo() {
	fmt.Println("=== N-gram Generation: Eager vs Lazy ===")
	fmt.Println()

	tokens := generateCorpus(200000)
	nRange := []int{1, 2, 3}

	fmt.Printf("Corpus size: %d tokens\n", len(tokens))
	fmt.Printf("Requested lengths: %v\n\n", nRange)

	// Eager generation materializes every gram up front
	fmt.Println("--- Eager (Generate) ---")
	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	var m1 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	grams := ngram.Generate(tokens, nRange, ngram.DefaultDelimiter)
	eagerElapsed := time.Since(start)

	var m2 runtime.MemStats
	runtime.ReadMemStats(&m2)

	eagerMemory := m2.TotalAlloc - m1.TotalAlloc
	fmt.Printf("Grams produced: %d\n", len(grams))
	fmt.Printf("Time: %v\n", eagerElapsed)
	fmt.Printf("Allocated: ~%.2f MB\n\n", float64(eagerMemory)/(1024*1024))

	grams = nil
	runtime.GC()
	time.Sleep(100 * time.Millisecond)

	// Lazy production holds one gram at a time
	fmt.Println("--- Lazy (Iterator) ---")
	var l1 runtime.MemStats
	runtime.ReadMemStats(&l1)

	start = time.Now()
	it := ngram.NewIterator(tokens, nRange, ngram.DefaultDelimiter)
	count := 0
	totalLen := 0
	for g, ok := it.Next(); ok; g, ok = it.Next() {
		count++
		totalLen += len(g)
	}
	lazyElapsed := time.Since(start)

	var l2 runtime.MemStats
	runtime.ReadMemStats(&l2)

	lazyMemory := l2.TotalAlloc - l1.TotalAlloc
	fmt.Printf("Grams produced: %d\n", count)
	fmt.Printf("Total gram bytes: %d\n", totalLen)
	fmt.Printf("Time: %v\n", lazyElapsed)
	fmt.Printf("Allocated: ~%.2f MB\n\n", float64(lazyMemory)/(1024*1024))

	fmt.Println("--- Comparison ---")
	fmt.Printf("Both forms emit the same sequence; the lazy form never holds it at once.\n")
	if lazyMemory > 0 {
		fmt.Printf("Peak-allocation ratio (eager/lazy retained): see MB figures above\n")
	}
}

func generateCorpus(size int) []string {
	vocab := []string{
		"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"pack", "my", "box", "with", "five", "dozen", "liquor", "jugs",
	}

	tokens := make([]string, size)
	for i := range tokens {
		tokens[i] = vocab[i%len(vocab)]
	}
	return tokens
}
