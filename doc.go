// Package gradient is your in-memory toolkit for walking every contiguous
// window of a sequence, from single elements up to the whole thing, one
// window at a time.
//
// 🚀 What is gradient?
//
//	A small, zero-surprise library that brings together:
//		• Sequencer: a lazy cursor over (width, start) pairs
//		• Sources: runes, bytes, words or any slice, indexed by element
//		• Iterators: range-over-func adapters and a closed-form Count
//		• A command-line front end with YAML configuration
//
// ✨ Why choose gradient?
//
//   - Deterministic – width ascending, then start ascending, every time
//   - Lazy – nothing is materialized before Next asks for it
//   - Total – empty input, zero caps and oversized caps are not errors
//   - Generic – one algorithm for every element type
//
// Under the hood, everything is organized under these subpackages:
//
//	sequencer/    - Sequencer, Source implementations, All/Spans/Collect/Count
//	config/       - command settings, YAML loading, schema validation
//	render/       - lines / YAML / JSON output of a gradient
//	cmd/gradient/ - the gradient command and its interactive prompt
//
// Quick ASCII example:
//
//	" abc "  →  " " "a" "b" "c" " "
//	            " a" "ab" "bc" "c "
//	            " ab" "abc" "bc "
//	            " abc" "abc "
//	            " abc "
//
//	go get github.com/katalvlaran/gradient/sequencer
package gradient
