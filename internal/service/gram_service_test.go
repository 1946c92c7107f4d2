package service

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func row(values ...interface{}) []interface{} { return values }

func TestGramService_GenerateRow(t *testing.T) {
	gs := NewGramService([]int{2}, " ", 2, zap.NewNop())

	got := gs.GenerateRow([]string{"hello", "world"}, []int{2}, "+")
	if !reflect.DeepEqual(got, []string{"hello+world"}) {
		t.Fatalf("Expected [hello+world], got %v", got)
	}
}

func TestGramService_Params(t *testing.T) {
	gs := NewGramService([]int{1, 2}, " ", 2, zap.NewNop())

	nRange, delim := gs.Params(nil, nil)
	if !reflect.DeepEqual(nRange, []int{1, 2}) || delim != " " {
		t.Fatalf("Expected configured defaults, got %v %q", nRange, delim)
	}

	custom := "-"
	nRange, delim = gs.Params([]int{3}, &custom)
	if !reflect.DeepEqual(nRange, []int{3}) || delim != "-" {
		t.Fatalf("Expected overrides, got %v %q", nRange, delim)
	}

	// An explicit empty delimiter is an override, not "use the default".
	empty := ""
	_, delim = gs.Params(nil, &empty)
	if delim != "" {
		t.Fatalf("Expected empty delimiter override, got %q", delim)
	}
}

func TestGramService_ProcessBatch(t *testing.T) {
	gs := NewGramService([]int{2}, " ", 2, zap.NewNop())

	rows := [][]interface{}{
		row("a", "b", "c"),
		{},
		row("x", "y"),
	}

	got := gs.ProcessBatch(context.Background(), rows, []int{2}, "-")

	want := [][]string{
		{"a-b", "b-c"},
		{},
		{"x-y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
}

func TestGramService_ProcessBatch_DegradedRows(t *testing.T) {
	gs := NewGramService([]int{1}, " ", 2, zap.NewNop())

	rows := [][]interface{}{
		row("ok"),
		row("bad", 42),       // non-string entry
		row(map[string]int{}), // not a token at all
		row("still", "fine"),
	}

	got := gs.ProcessBatch(context.Background(), rows, []int{1}, " ")

	if len(got) != len(rows) {
		t.Fatalf("Expected row alignment %d, got %d", len(rows), len(got))
	}
	if !reflect.DeepEqual(got[0], []string{"ok"}) {
		t.Fatalf("Expected [ok], got %v", got[0])
	}
	if len(got[1]) != 0 || len(got[2]) != 0 {
		t.Fatalf("Expected degraded rows to be empty, got %v and %v", got[1], got[2])
	}
	if !reflect.DeepEqual(got[3], []string{"still", "fine"}) {
		t.Fatalf("Expected [still fine], got %v", got[3])
	}
}

func TestGramService_ProcessBatch_ManyWorkersKeepOrder(t *testing.T) {
	gs := NewGramService([]int{2}, " ", 8, zap.NewNop())

	rows := make([][]interface{}, 200)
	for i := range rows {
		rows[i] = row("a", "b", "c", "d")
	}

	got := gs.ProcessBatch(context.Background(), rows, []int{2, 3}, " ")

	want := []string{"a b", "b c", "c d", "a b c", "b c d"}
	for i, r := range got {
		if !reflect.DeepEqual(r, want) {
			t.Fatalf("Row %d out of order: %v", i, r)
		}
	}
}

func TestGramService_ProcessBatch_Cancelled(t *testing.T) {
	gs := NewGramService([]int{1}, " ", 2, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows := make([][]interface{}, 50)
	for i := range rows {
		rows[i] = row("tok")
	}

	got := gs.ProcessBatch(ctx, rows, []int{1}, " ")

	// Alignment holds even when the batch is cut short; unreached rows are
	// empty, never missing.
	if len(got) != len(rows) {
		t.Fatalf("Expected %d rows, got %d", len(rows), len(got))
	}
	for i, r := range got {
		if r == nil {
			t.Fatalf("Row %d is nil, want empty slice", i)
		}
	}
}
