// Package sequencer enumerates every contiguous window of a sequence in
// "gradient" order: all windows of width 1 left to right, then all windows
// of width 2, and so on up to the full length or an optional maximum width.
//
// 🚀 What is a gradient?
//
//	For " abc " the gradient is
//	  " "  "a"  "b"  "c"  " "        (width 1)
//	  " a" "ab" "bc" "c "            (width 2)
//	  " ab" "abc" "bc "              (width 3)
//	  " abc" "abc "                  (width 4)
//	  " abc "                        (width 5)
//	It is handy for substring search tables, n-gram extraction,
//	fuzzy-matching candidate generation and test-input fan-out.
//
// ✨ Key features:
//   - lazy: one window is materialized per Next call, nothing up front
//   - generic over any Source (runes, bytes, words, arbitrary slices)
//   - indices are always element indices, never encoded byte offsets
//   - optional maximum width (WithMaxWidth)
//   - range-over-func adapters (All, Spans) and a closed-form Count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gradient/sequencer"
//
//	s := sequencer.NewString(" abc ", sequencer.WithMaxWidth(2))
//	for w := range s.All() {
//	  fmt.Printf("%q\n", w)
//	}
//
// Errors:
//
//	None. Every input shape (empty source, cap of zero or below, cap above
//	the length) is resolved by exhaustion: Next simply reports false.
//
// Concurrency:
//
//	A Sequencer is owned by one goroutine at a time. Sources are read-only
//	after construction and may back any number of sequencers concurrently.
//
// Performance:
//
//   - Next:  O(width) time and memory (one copy of the window)
//   - Total: n·(n+1)/2 windows when uncapped
package sequencer
