// Package main is the gradient command: it prints every contiguous window of
// its input, narrowest first.
//
//	gradient [-config file.yaml] [-max-width N] [-mode runes|bytes|words]
//	         [-format lines|yaml|json] [-spans] [-count] [-v] [text ...]
//
// With text arguments the joined text is enumerated once. Without arguments
// it reads standard input line by line, or starts an interactive prompt when
// standard input is a terminal.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/katalvlaran/gradient/config"
	"github.com/katalvlaran/gradient/render"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func main() {
	interactive := readline.IsTerminal(int(os.Stdin.Fd()))
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath string
	maxWidth   int
	mode       string
	format     string
	spans      bool
	count      bool
	verbose    bool
	text       []string
}

// parseFlags parses args; set reports which flags were given explicitly so
// they can override the config file.
func parseFlags(args []string, stderr io.Writer) (cliFlags, map[string]bool, error) {
	var f cliFlags
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.IntVar(&f.maxWidth, "max-width", config.Unbounded, "widest window to print (-1 for no cap)")
	fs.StringVar(&f.mode, "mode", string(config.ModeRunes), "element split: runes, bytes or words")
	fs.StringVar(&f.format, "format", string(config.FormatLines), "output format: lines, yaml or json")
	fs.BoolVar(&f.spans, "spans", false, "print [start,end) and width with every window")
	fs.BoolVar(&f.count, "count", false, "print only the number of windows")
	fs.BoolVar(&f.verbose, "v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return f, nil, err
	}
	f.text = fs.Args()

	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set, nil
}

// resolveConfig layers defaults, the config file and explicit flags.
func resolveConfig(f cliFlags, set map[string]bool) (config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(f.configPath); err != nil {
			return cfg, err
		}
	}

	var opts []config.Option
	if set["max-width"] {
		opts = append(opts, config.WithMaxWidth(f.maxWidth))
	}
	if set["mode"] {
		opts = append(opts, config.WithMode(config.Mode(f.mode)))
	}
	if set["format"] {
		opts = append(opts, config.WithFormat(config.Format(f.format)))
	}
	if set["spans"] {
		opts = append(opts, config.WithSpans(f.spans))
	}
	cfg = cfg.Apply(opts...)
	return cfg, cfg.Validate()
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) error {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	log := newLogHook(stderr, f.verbose)
	cfg, err := resolveConfig(f, set)
	if err != nil {
		return err
	}
	log.event("ConfigResolved", cfg)

	s := &session{cfg: cfg, count: f.count, out: stdout, log: log}
	switch {
	case len(f.text) > 0:
		return s.enumerate(strings.Join(f.text, " "))
	case interactive:
		return s.repl(stdin, stderr)
	default:
		return s.lines(stdin)
	}
}

// session carries the settings shared by every input processed in one run.
type session struct {
	cfg   config.Config
	count bool
	out   io.Writer
	log   *logHook
}

// enumerate prints the gradient of input, or its size when count is set.
func (s *session) enumerate(input string) error {
	started := time.Now()
	var (
		n   int
		err error
	)
	if s.count {
		n, err = render.Count(input, s.cfg)
		if err == nil {
			_, err = fmt.Fprintln(s.out, n)
		}
	} else {
		n, err = render.Write(s.out, input, s.cfg)
	}
	if err != nil {
		return err
	}
	s.log.event("Enumerated", map[string]any{
		"input":   input,
		"windows": n,
		"elapsed": time.Since(started).String(),
	})
	return nil
}

// lines enumerates every line of r.
func (s *session) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := s.enumerate(sc.Text()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
