package sequencer_test

import (
	"testing"

	"github.com/katalvlaran/gradient/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Concrete gradients
//----------------------------------------------------------------------------//

// TestSequencer_Gradient checks the full gradient of " abc ".
func TestSequencer_Gradient(t *testing.T) {
	got := sequencer.Collect(sequencer.NewString(" abc "))
	want := []string{
		" ", "a", "b", "c", " ",
		" a", "ab", "bc", "c ",
		" ab", "abc", "bc ",
		" abc", "abc ",
		" abc ",
	}
	assert.Equal(t, want, got)
}

// TestSequencer_MaxWidth checks that a cap of 2 stops after the width-2 row.
func TestSequencer_MaxWidth(t *testing.T) {
	got := sequencer.Collect(sequencer.NewWithMaxWidth(sequencer.FromString(" abc "), 2))
	want := []string{" ", "a", "b", "c", " ", " a", "ab", "bc", "c "}
	assert.Equal(t, want, got)
}

// TestSequencer_Empty verifies that an empty source never yields a window.
func TestSequencer_Empty(t *testing.T) {
	for _, opts := range [][]sequencer.Option{
		nil,
		{sequencer.WithMaxWidth(0)},
		{sequencer.WithMaxWidth(3)},
		{sequencer.WithMaxWidth(-4)},
	} {
		s := sequencer.NewString("", opts...)
		assert.True(t, s.Finished(), "empty source must start finished")
		w, ok := s.Next()
		assert.False(t, ok)
		assert.Equal(t, "", w)
		assert.Equal(t, 0, s.Remaining())
	}
}

// TestSequencer_NonPositiveCap verifies that caps below 1 yield nothing.
func TestSequencer_NonPositiveCap(t *testing.T) {
	for _, k := range []int{0, -1, -100} {
		s := sequencer.NewString("hello", sequencer.WithMaxWidth(k))
		assert.True(t, s.Finished(), "cap %d", k)
		assert.Empty(t, sequencer.Collect(s), "cap %d", k)
	}
}

// TestSequencer_CapAboveLength behaves exactly like the uncapped gradient.
func TestSequencer_CapAboveLength(t *testing.T) {
	capped := sequencer.Collect(sequencer.NewString("wxyz", sequencer.WithMaxWidth(10)))
	uncapped := sequencer.Collect(sequencer.NewString("wxyz"))
	assert.Equal(t, uncapped, capped)
	assert.Len(t, capped, 10)
}

// TestSequencer_WithoutMaxWidth checks that a later option clears the cap.
func TestSequencer_WithoutMaxWidth(t *testing.T) {
	s := sequencer.NewString("abc", sequencer.WithMaxWidth(1), sequencer.WithoutMaxWidth())
	assert.Len(t, sequencer.Collect(s), 6)
}

// TestSequencer_SingleElement yields exactly one window.
func TestSequencer_SingleElement(t *testing.T) {
	s := sequencer.NewString("x")
	w, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "x", w)
	assert.True(t, s.Finished())
	_, ok = s.Next()
	assert.False(t, ok)
}

// TestSequencer_NilSource treats a nil source as empty.
func TestSequencer_NilSource(t *testing.T) {
	s := sequencer.New[string](nil)
	assert.True(t, s.Finished())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Current())
	_, ok := s.Next()
	assert.False(t, ok)
}

// negativeSource reports a length below zero.
type negativeSource struct{}

func (negativeSource) Len() int                     { return -3 }
func (negativeSource) Window(start, end int) string { return "" }

// TestSequencer_NegativeLength treats a source reporting a negative length
// as empty.
func TestSequencer_NegativeLength(t *testing.T) {
	s := sequencer.New[string](negativeSource{})
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Finished())
	assert.Equal(t, 0, s.Remaining())
	assert.Empty(t, sequencer.Collect(s))

	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, sequencer.Span{Start: 0, End: 0}, s.Range())

	capped := sequencer.NewWithMaxWidth[string](negativeSource{}, 2)
	assert.True(t, capped.Finished())
	assert.Equal(t, 0, capped.Remaining())
}

//----------------------------------------------------------------------------//
// Cursor and accessors
//----------------------------------------------------------------------------//

// TestSequencer_InitialState checks the pre-seeded cursor.
func TestSequencer_InitialState(t *testing.T) {
	s := sequencer.NewString("abc")
	assert.Equal(t, 1, s.Width())
	assert.Equal(t, 0, s.Start())
	assert.Equal(t, 0, s.End())
	assert.Equal(t, sequencer.Span{Start: 0, End: 0}, s.Range())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "", s.Current())
	assert.False(t, s.Finished())
	assert.Equal(t, 6, s.Remaining())
}

// TestSequencer_CursorTrace walks "abc" and checks every cursor position.
func TestSequencer_CursorTrace(t *testing.T) {
	s := sequencer.NewString("abc")
	trace := []struct {
		window     string
		start, end int
		width      int
	}{
		{"a", 0, 1, 1},
		{"b", 1, 2, 1},
		{"c", 2, 3, 1},
		{"ab", 0, 2, 2},
		{"bc", 1, 3, 2},
		{"abc", 0, 3, 3},
	}
	for i, step := range trace {
		w, ok := s.Next()
		require.True(t, ok, "step %d", i)
		assert.Equal(t, step.window, w, "step %d", i)
		assert.Equal(t, step.start, s.Start(), "step %d start", i)
		assert.Equal(t, step.end, s.End(), "step %d end", i)
		assert.Equal(t, step.width, s.Width(), "step %d width", i)
		assert.Equal(t, s.Width(), s.End()-s.Start(), "step %d: end-start must equal width", i)
		assert.Equal(t, step.window, s.Current(), "step %d current", i)
	}
	assert.True(t, s.Finished())
}

// TestSequencer_ExhaustedCursorIsStable verifies that failed Next calls do
// not move the cursor, including the one refused by the cap.
func TestSequencer_ExhaustedCursorIsStable(t *testing.T) {
	s := sequencer.NewString("abcd", sequencer.WithMaxWidth(2))
	sequencer.Collect(s)

	want := sequencer.Span{Start: 2, End: 4}
	for i := 0; i < 3; i++ {
		_, ok := s.Next()
		assert.False(t, ok)
		assert.Equal(t, want, s.Range())
		assert.Equal(t, 2, s.Width())
		assert.Equal(t, "cd", s.Current())
		assert.True(t, s.Finished())
	}
}

// TestSequencer_IdempotentAccessors calls each accessor twice between steps.
func TestSequencer_IdempotentAccessors(t *testing.T) {
	s := sequencer.NewString("gradient", sequencer.WithMaxWidth(4))
	for {
		f1, f2 := s.Finished(), s.Finished()
		assert.Equal(t, f1, f2)
		assert.Equal(t, s.Width(), s.Width())
		assert.Equal(t, s.Start(), s.Start())
		assert.Equal(t, s.End(), s.End())
		assert.Equal(t, s.Range(), s.Range())
		assert.Equal(t, s.Remaining(), s.Remaining())
		assert.Equal(t, s.Current(), s.Current())
		if _, ok := s.Next(); !ok {
			break
		}
	}
}

// TestSequencer_Options exposes the folded options.
func TestSequencer_Options(t *testing.T) {
	assert.Equal(t, sequencer.DefaultOptions(), sequencer.NewString("a").Options())
	assert.Equal(t,
		sequencer.Options{Capped: true, MaxWidth: 3},
		sequencer.NewString("a", nil, sequencer.WithMaxWidth(3)).Options())
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestSequencer_Counts checks the window count for every length up to 12 and
// every cap from -1 to n+2 against Count and the explicit per-row sum.
func TestSequencer_Counts(t *testing.T) {
	for n := 0; n <= 12; n++ {
		src := make([]int, n)
		for i := range src {
			src[i] = i
		}

		got := len(sequencer.Collect(sequencer.NewSlice(src)))
		assert.Equal(t, n*(n+1)/2, got, "n=%d uncapped", n)
		assert.Equal(t, got, sequencer.Count(n), "n=%d uncapped Count", n)

		for k := -1; k <= n+2; k++ {
			want := 0
			for w := 1; w <= k && w <= n; w++ {
				want += n - w + 1
			}
			got := len(sequencer.Collect(sequencer.NewSlice(src, sequencer.WithMaxWidth(k))))
			assert.Equal(t, want, got, "n=%d k=%d", n, k)
			assert.Equal(t, want, sequencer.Count(n, sequencer.WithMaxWidth(k)), "n=%d k=%d Count", n, k)
		}
	}
}

// TestSequencer_Order checks that (width, start) strictly increases and that
// each window equals the source re-sliced at its Range.
func TestSequencer_Order(t *testing.T) {
	src := []rune("héllo, wörld")
	s := sequencer.NewSlice(src)

	prevWidth, prevStart := 0, -1
	for {
		w, ok := s.Next()
		if !ok {
			break
		}
		width, start := s.Width(), s.Start()
		if width == prevWidth {
			assert.Equal(t, prevStart+1, start, "start must advance by one inside a row")
		} else {
			assert.Equal(t, prevWidth+1, width, "width must advance by one between rows")
			assert.Equal(t, 0, start, "a new row must start at 0")
		}
		r := s.Range()
		assert.Equal(t, src[r.Start:r.End], w)
		prevWidth, prevStart = width, start
	}
	assert.Equal(t, len(src), prevWidth)
}

// TestSequencer_Remaining decreases by one per produced window and reaches
// zero exactly when Finished flips.
func TestSequencer_Remaining(t *testing.T) {
	for _, opts := range [][]sequencer.Option{nil, {sequencer.WithMaxWidth(3)}} {
		s := sequencer.NewString("abcdef", opts...)
		left := s.Remaining()
		assert.Equal(t, sequencer.Count(6, opts...), left)
		for {
			assert.Equal(t, left == 0, s.Finished())
			if _, ok := s.Next(); !ok {
				break
			}
			left--
			assert.Equal(t, left, s.Remaining())
		}
		assert.Equal(t, 0, left)
	}
}

// TestSequencer_IndependentCursors runs two sequencers over one source.
func TestSequencer_IndependentCursors(t *testing.T) {
	src := sequencer.FromString("xyz")
	a, b := sequencer.New[string](src), sequencer.New[string](src)

	wa, _ := a.Next()
	wa, _ = a.Next()
	wb, _ := b.Next()
	assert.Equal(t, "y", wa)
	assert.Equal(t, "x", wb)
	assert.Equal(t, sequencer.Collect(sequencer.NewString("xyz"))[2:], sequencer.Collect(a))
}
