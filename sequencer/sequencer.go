package sequencer

// Sequencer: lazy gradient enumeration
//
// Description:
//
//	A Sequencer holds a Source and a cursor (start, end, width, row state)
//	and produces one window per Next call, in ascending (width, start)
//	order. No window is computed before it is asked for.
//
// Algorithm Outline (one Next call):
//  1. If Finished, report exhaustion.
//  2. slidingWithinRow: end += 1, start = end − width.
//  3. startingNewRow:   width += 1, start = 0, end = width,
//     then switch to slidingWithinRow.
//  4. If end == Len, the row is complete: switch to startingNewRow.
//  5. Materialize Source.Window(start, end).
//
// The cursor is pre-seeded with width = 1, start = end = 0 in
// slidingWithinRow, so the first call slides into [0,1) instead of
// opening a second row.
//
// Termination:
//   - Len == 0                                   → no windows
//   - Capped and MaxWidth < 1                    → no windows
//   - startingNewRow and width == Len            → full span was produced
//   - startingNewRow and Capped, width ≥ MaxWidth → next row is over the cap
//
// Complexity:
//
//	Next      = O(width) (the window copy)
//	Remaining = O(1)
type Sequencer[W any] struct {
	src    Source[W]
	length int
	opts   Options

	start int
	end   int
	width int
	state rowState
}

// New creates a Sequencer over src. A nil src, or one reporting a negative
// length, behaves as an empty source. The source length is read once here;
// src must not change afterwards.
func New[W any](src Source[W], opts ...Option) *Sequencer[W] {
	length := 0
	if src != nil {
		length = max(src.Len(), 0)
	}
	return &Sequencer[W]{
		src:    src,
		length: length,
		opts:   buildOptions(opts),
		width:  1,
		state:  slidingWithinRow,
	}
}

// NewWithMaxWidth creates a Sequencer that never produces windows wider
// than maxWidth. It is shorthand for New(src, WithMaxWidth(maxWidth)).
func NewWithMaxWidth[W any](src Source[W], maxWidth int) *Sequencer[W] {
	return New(src, WithMaxWidth(maxWidth))
}

// Next advances the cursor by one step and returns the window it lands on.
// The boolean is false once the gradient is exhausted; the returned window
// is then the zero value of W and the cursor is left untouched.
func (s *Sequencer[W]) Next() (W, bool) {
	if s.Finished() {
		var zero W
		return zero, false
	}

	switch s.state {
	case startingNewRow:
		s.width++
		s.start = 0
		s.end = s.width
		s.state = slidingWithinRow
	default:
		s.end++
		s.start = s.end - s.width
	}
	if s.end == s.length {
		s.state = startingNewRow
	}

	return s.src.Window(s.start, s.end), true
}

// Finished reports whether Next would return false. It does not advance.
func (s *Sequencer[W]) Finished() bool {
	if s.length == 0 {
		return true
	}
	if s.opts.Capped && s.opts.MaxWidth < 1 {
		return true
	}
	if s.state != startingNewRow {
		return false
	}
	return s.width >= s.opts.widthLimit(s.length)
}

// Remaining returns how many windows Next will still produce.
func (s *Sequencer[W]) Remaining() int {
	if s.Finished() {
		return 0
	}
	limit := s.opts.widthLimit(s.length)
	n := 0
	if s.state == slidingWithinRow {
		n = s.length - s.end
	}
	return n + rowsTotal(s.length, s.width+1, limit)
}

// Width returns the width of the current row.
func (s *Sequencer[W]) Width() int { return s.width }

// Start returns the inclusive start index of the current window.
func (s *Sequencer[W]) Start() int { return s.start }

// End returns the exclusive end index of the current window.
func (s *Sequencer[W]) End() int { return s.end }

// Range returns the current window as a Span.
func (s *Sequencer[W]) Range() Span { return Span{Start: s.start, End: s.end} }

// Len returns the element count of the source.
func (s *Sequencer[W]) Len() int { return s.length }

// Current re-materializes the window last returned by Next. Before the
// first Next it is the empty window [0,0).
func (s *Sequencer[W]) Current() W {
	if s.src == nil {
		var zero W
		return zero
	}
	return s.src.Window(s.start, s.end)
}

// Options returns the options the Sequencer was built with.
func (s *Sequencer[W]) Options() Options { return s.opts }
