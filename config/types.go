// Package config defines the settings of the gradient command: how input is
// split into elements, how windows are printed, and the optional width cap.
//
// Settings come from three layers, later layers winning:
//
//	DefaultConfig()  →  YAML file (Load / LoadFile)  →  functional Options
//
// A YAML document is checked against an embedded JSON Schema before it is
// decoded, so typos such as "max_widht" are rejected instead of ignored.
//
// Example file:
//
//	max_width: 3
//	mode: words
//	format: yaml
//	spans: true
package config

import (
	"fmt"

	"github.com/katalvlaran/gradient/sequencer"
)

// Unbounded is the max_width value meaning "no cap".
const Unbounded = -1

// Mode selects how the input text is split into elements.
type Mode string

const (
	// ModeRunes treats every Unicode code point as one element.
	ModeRunes Mode = "runes"
	// ModeBytes treats every byte as one element.
	ModeBytes Mode = "bytes"
	// ModeWords treats every white-space separated word as one element.
	ModeWords Mode = "words"
)

// Format selects the output encoding.
type Format string

const (
	// FormatLines prints one quoted window per line.
	FormatLines Format = "lines"
	// FormatYAML prints a YAML sequence.
	FormatYAML Format = "yaml"
	// FormatJSON prints a JSON array.
	FormatJSON Format = "json"
)

// Config holds the gradient command settings.
//
// MaxWidth – widest window to print; Unbounded (-1) disables the cap and
//
//	0 prints nothing.
//
// Mode     – element split (runes, bytes, words).
// Format   – output encoding (lines, yaml, json).
// Spans    – if true, print each window's [start,end) and width as well.
type Config struct {
	MaxWidth int    `yaml:"max_width"`
	Mode     Mode   `yaml:"mode"`
	Format   Format `yaml:"format"`
	Spans    bool   `yaml:"spans"`
}

// Option represents a functional option for adjusting a Config.
type Option func(*Config)

// WithMaxWidth sets the width cap; pass Unbounded to remove it.
func WithMaxWidth(width int) Option {
	return func(c *Config) {
		c.MaxWidth = width
	}
}

// WithMode sets the element split.
func WithMode(m Mode) Option {
	return func(c *Config) {
		c.Mode = m
	}
}

// WithFormat sets the output encoding.
func WithFormat(f Format) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithSpans toggles span output.
func WithSpans(on bool) Option {
	return func(c *Config) {
		c.Spans = on
	}
}

// DefaultConfig returns the settings used when nothing else is given:
// uncapped rune windows printed one per line, without spans.
func DefaultConfig() Config {
	return Config{
		MaxWidth: Unbounded,
		Mode:     ModeRunes,
		Format:   FormatLines,
		Spans:    false,
	}
}

// Apply returns a copy of c with opts applied in order.
func (c Config) Apply(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// Validate checks every field and returns the matching sentinel error,
// wrapped with the offending value.
func (c Config) Validate() error {
	if c.MaxWidth < Unbounded {
		return fmt.Errorf("%w: got %d", ErrBadMaxWidth, c.MaxWidth)
	}
	switch c.Mode {
	case ModeRunes, ModeBytes, ModeWords:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	switch c.Format {
	case FormatLines, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return nil
}

// SequencerOptions translates the cap into sequencer options.
func (c Config) SequencerOptions() []sequencer.Option {
	if c.MaxWidth == Unbounded {
		return nil
	}
	return []sequencer.Option{sequencer.WithMaxWidth(c.MaxWidth)}
}

