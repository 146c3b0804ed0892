package sequencer

import "fmt"

// Source is an indexable, length-reporting, range-sliceable sequence of
// elements that a Sequencer walks over.
//
// Contract:
//   - Len reports the element count and must not change once a Sequencer
//     has been built on top of the Source.
//   - Window(start, end) returns an owned copy of the elements in the
//     half-open range [start, end), with 0 ≤ start ≤ end ≤ Len().
//     Mutating the returned value must never affect the Source.
//
// W is the materialized window type: string for text, []E for slices.
type Source[W any] interface {
	Len() int
	Window(start, end int) W
}

// Span is a half-open element range [Start, End).
type Span struct {
	Start int // first element index (inclusive)
	End   int // last element index (exclusive)
}

// Len returns End − Start.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// String renders the span as "[start,end)".
func (sp Span) String() string {
	return fmt.Sprintf("[%d,%d)", sp.Start, sp.End)
}

// rowState tells Next how to advance the cursor.
//
//   - slidingWithinRow - keep the width, shift the window right by one.
//   - startingNewRow   - the previous window touched the end of the source;
//     the next window opens a row one element wider at index 0.
type rowState uint8

const (
	slidingWithinRow rowState = iota
	startingNewRow
)

// Options configures a Sequencer.
//
// Capped   – if true, windows wider than MaxWidth are never produced.
// MaxWidth – the inclusive width cap; only read when Capped is set.
//
//	A cap below 1 yields no windows at all.
type Options struct {
	Capped   bool // Whether MaxWidth applies
	MaxWidth int  // Widest window to produce
}

// Option represents a functional option for configuring a Sequencer.
type Option func(*Options)

// WithMaxWidth caps the window width at width. Enumeration stops before the
// first window of width+1 elements. Any width below 1 produces zero windows;
// it is not an error.
func WithMaxWidth(width int) Option {
	return func(o *Options) {
		o.Capped = true
		o.MaxWidth = width
	}
}

// WithoutMaxWidth removes a previously applied cap.
func WithoutMaxWidth() Option {
	return func(o *Options) {
		o.Capped = false
		o.MaxWidth = 0
	}
}

// DefaultOptions returns uncapped options.
func DefaultOptions() Options {
	return Options{}
}

// buildOptions folds opts over DefaultOptions, skipping nil entries.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// widthLimit returns the widest row that will be produced for n elements.
func (o Options) widthLimit(n int) int {
	if o.Capped && o.MaxWidth < n {
		return max(o.MaxWidth, 0)
	}
	return n
}
