package sequencer

import (
	"slices"
	"strings"
)

// Compile-time checks that the built-in sources satisfy Source.
var (
	_ Source[string] = Text{}
	_ Source[[]byte] = Bytes{}
	_ Source[[]int]  = Slice[int]{}
	_ Source[string] = Words{}
)

// Text is a string viewed as a sequence of runes. Windows are strings and
// never split a code point: index i is the i-th rune, not the i-th byte.
type Text struct {
	runes []rune
}

// FromString decodes s into runes once. Invalid UTF-8 bytes become
// utf8.RuneError, one per bad byte.
func FromString(s string) Text {
	return Text{runes: []rune(s)}
}

// Len returns the rune count.
func (t Text) Len() int { return len(t.runes) }

// Window returns runes [start, end) as a new string.
func (t Text) Window(start, end int) string {
	return string(t.runes[start:end])
}

// Bytes is a byte slice viewed as a sequence of bytes.
type Bytes struct {
	b []byte
}

// FromBytes copies b, so later writes to b do not reach the source.
func FromBytes(b []byte) Bytes {
	return Bytes{b: slices.Clone(b)}
}

// Len returns the byte count.
func (x Bytes) Len() int { return len(x.b) }

// Window returns a fresh copy of bytes [start, end).
func (x Bytes) Window(start, end int) []byte {
	return slices.Clone(x.b[start:end])
}

// Slice is a sequence of arbitrary elements.
type Slice[E any] struct {
	elems []E
}

// FromSlice copies elems, so later writes to elems do not reach the source.
// Elements themselves are copied shallowly.
func FromSlice[E any](elems []E) Slice[E] {
	return Slice[E]{elems: slices.Clone(elems)}
}

// Len returns the element count.
func (x Slice[E]) Len() int { return len(x.elems) }

// Window returns a fresh copy of elements [start, end).
func (x Slice[E]) Window(start, end int) []E {
	return slices.Clone(x.elems[start:end])
}

// Words is a string split on Unicode white space. Each window is its words
// re-joined with a single space, so "a  b\tc" yields "a b" rather than
// "a  b".
type Words struct {
	words []string
}

// FromWords splits s with strings.Fields.
func FromWords(s string) Words {
	return Words{words: strings.Fields(s)}
}

// Len returns the word count.
func (x Words) Len() int { return len(x.words) }

// Window joins words [start, end) with single spaces.
func (x Words) Window(start, end int) string {
	return strings.Join(x.words[start:end], " ")
}

// NewString enumerates the rune windows of s.
func NewString(s string, opts ...Option) *Sequencer[string] {
	return New[string](FromString(s), opts...)
}

// NewBytes enumerates the byte windows of b.
func NewBytes(b []byte, opts ...Option) *Sequencer[[]byte] {
	return New[[]byte](FromBytes(b), opts...)
}

// NewSlice enumerates the element windows of elems.
func NewSlice[E any](elems []E, opts ...Option) *Sequencer[[]E] {
	return New[[]E](FromSlice(elems), opts...)
}

// NewWords enumerates the word windows of s.
func NewWords(s string, opts ...Option) *Sequencer[string] {
	return New[string](FromWords(s), opts...)
}
