package sequencer

import (
	"iter"
	"slices"
)

// All returns a single-use iterator over the windows the Sequencer has not
// produced yet. Breaking out of the range loop leaves the cursor on the last
// yielded window, so a later All or Next resumes right after it.
func (s *Sequencer[W]) All() iter.Seq[W] {
	return func(yield func(W) bool) {
		for {
			w, ok := s.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

// Spans is like All but also yields the Span each window was cut from.
func (s *Sequencer[W]) Spans() iter.Seq2[Span, W] {
	return func(yield func(Span, W) bool) {
		for {
			w, ok := s.Next()
			if !ok || !yield(s.Range(), w) {
				return
			}
		}
	}
}

// Collect drains s and returns every remaining window in order.
// The result is never nil.
func Collect[W any](s *Sequencer[W]) []W {
	out := make([]W, 0, s.Remaining())
	return slices.AppendSeq(out, s.All())
}

// Count returns the number of windows a fresh Sequencer over n elements,
// built with the same opts, would produce:
//
//	uncapped:        n·(n+1)/2
//	cap k < 1:       0
//	cap k (1 ≤ k):   Σ_{w=1..min(k,n)} (n − w + 1)
//
// n ≤ 0 yields 0.
func Count(n int, opts ...Option) int {
	if n <= 0 {
		return 0
	}
	return rowsTotal(n, 1, buildOptions(opts).widthLimit(n))
}

// rowsTotal sums the window counts of rows from..to (inclusive) over n
// elements; a row of width w holds n − w + 1 windows.
func rowsTotal(n, from, to int) int {
	if to < from {
		return 0
	}
	rows := to - from + 1
	return rows*(n+1) - (from+to)*rows/2
}
