// Package render prints the gradient of a piece of text according to a
// config.Config: the input is split into runes, bytes or words, windows are
// pulled one by one from a sequencer.Sequencer, and written as quoted lines,
// a YAML sequence or a JSON array.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gradient/config"
	"github.com/katalvlaran/gradient/sequencer"
	"gopkg.in/yaml.v3"
)

// Record is one window together with its position, as emitted when
// Config.Spans is set.
type Record struct {
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Width  int    `json:"width" yaml:"width"`
	Window string `json:"window" yaml:"window"`
}

// windows is a Sequencer whose windows have been mapped to strings,
// whatever the element type.
type windows struct {
	next  func() (string, bool)
	span  func() sequencer.Span
	width func() int
	left  func() int
}

// adapt erases the window type of s.
func adapt[W any](s *sequencer.Sequencer[W], text func(W) string) windows {
	return windows{
		next: func() (string, bool) {
			w, ok := s.Next()
			if !ok {
				return "", false
			}
			return text(w), true
		},
		span:  s.Range,
		width: s.Width,
		left:  s.Remaining,
	}
}

// open builds the sequencer for input under cfg.
func open(input string, cfg config.Config) (windows, error) {
	if err := cfg.Validate(); err != nil {
		return windows{}, err
	}
	opts := cfg.SequencerOptions()
	switch cfg.Mode {
	case config.ModeBytes:
		text := func(b []byte) string { return string(b) }
		if cfg.Format == config.FormatJSON {
			text = escapeBytes
		}
		return adapt(sequencer.NewBytes([]byte(input), opts...), text), nil
	case config.ModeWords:
		return adapt(sequencer.NewWords(input, opts...), identity), nil
	default:
		return adapt(sequencer.NewString(input, opts...), identity), nil
	}
}

func identity(s string) string { return s }

// escapeBytes renders b as the body of a Go string literal. JSON strings
// must be valid UTF-8, so a byte window holding a partial code point is
// written as \xNN escapes; strconv.Unquote of the quoted value gives back
// the original bytes.
func escapeBytes(b []byte) string {
	q := strconv.Quote(string(b))
	return q[1 : len(q)-1]
}

// Count returns how many windows Write would print for input.
func Count(input string, cfg config.Config) (int, error) {
	ws, err := open(input, cfg)
	if err != nil {
		return 0, err
	}
	return ws.left(), nil
}

// Write renders the gradient of input to w and returns the number of
// windows written. Lines output is streamed; YAML and JSON output is
// buffered until the gradient is exhausted.
func Write(w io.Writer, input string, cfg config.Config) (int, error) {
	ws, err := open(input, cfg)
	if err != nil {
		return 0, err
	}

	switch cfg.Format {
	case config.FormatYAML, config.FormatJSON:
		return writeDocument(w, ws, cfg)
	default:
		return writeLines(w, ws, cfg)
	}
}

// writeLines prints one strconv-quoted window per line, prefixed with its
// span when cfg.Spans is set.
func writeLines(w io.Writer, ws windows, cfg config.Config) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for {
		text, ok := ws.next()
		if !ok {
			break
		}
		if cfg.Spans {
			fmt.Fprintf(bw, "%v\t%d\t", ws.span(), ws.width())
		}
		bw.WriteString(strconv.Quote(text))
		bw.WriteByte('\n')
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("render: write: %w", err)
	}
	return n, nil
}

// writeDocument collects the gradient and encodes it as YAML or JSON.
// Without spans the document is a plain list of strings.
func writeDocument(w io.Writer, ws windows, cfg config.Config) (int, error) {
	var doc any
	n := 0
	if cfg.Spans {
		records := make([]Record, 0, ws.left())
		for text, ok := ws.next(); ok; text, ok = ws.next() {
			sp := ws.span()
			records = append(records, Record{Start: sp.Start, End: sp.End, Width: ws.width(), Window: text})
		}
		doc, n = records, len(records)
	} else {
		texts := make([]string, 0, ws.left())
		for text, ok := ws.next(); ok; text, ok = ws.next() {
			texts = append(texts, text)
		}
		doc, n = texts, len(texts)
	}

	if cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return 0, fmt.Errorf("render: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return 0, fmt.Errorf("render: encode yaml: %w", err)
		}
		return n, nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("render: encode json: %w", err)
	}
	return n, nil
}
