package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/katalvlaran/gradient/config"
	"gopkg.in/yaml.v3"
)

// errQuit ends the interactive loop.
var errQuit = errors.New("quit")

const replHelp = `Type any text to print its gradient. Commands:
  :max N|off          cap the window width (off removes the cap)
  :mode runes|bytes|words
  :format lines|yaml|json
  :spans on|off       print [start,end) and width with every window
  :count on|off       print only the number of windows
  :config             show the current settings
  :help               show this help
  :q, quit, exit      leave`

// repl reads lines with readline until EOF, Ctrl-C on an empty line, or a
// quit command.
func (s *session) repl(stdin io.Reader, stderr io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          colorCyan + "gradient> " + colorReset,
		Stdin:           io.NopCloser(stdin),
		Stdout:          s.out,
		Stderr:          stderr,
		InterruptPrompt: "^C",
		EOFPrompt:       ":q",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(s.out, "%s%sgradient%s: type :help for commands\n",
		colorBold, colorYellow, colorReset)

	for {
		input, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(input) == 0 {
					break
				}
				continue
			}
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := s.handle(input); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			fmt.Fprintf(s.out, "%s%v%s\n", colorRed, err, colorReset)
		}
	}
	fmt.Fprintf(s.out, "%sGoodbye!%s\n", colorGreen, colorReset)
	return nil
}

// handle runs one REPL line: a ':' command or text to enumerate.
// Lines are trimmed only for command detection; text is enumerated as typed.
func (s *session) handle(line string) error {
	cmd := strings.TrimSpace(line)
	switch cmd {
	case "":
		return nil
	case ":q", "quit", "exit":
		return errQuit
	}
	if !strings.HasPrefix(cmd, ":") {
		return s.enumerate(line)
	}

	name, arg, _ := strings.Cut(cmd[1:], " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "help":
		_, err := fmt.Fprintln(s.out, replHelp)
		return err
	case "config":
		data, err := yaml.Marshal(s.cfg)
		if err != nil {
			return err
		}
		_, err = s.out.Write(data)
		return err
	case "max":
		if arg == "off" {
			return s.set(config.WithMaxWidth(config.Unbounded))
		}
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("max: %q is not a number", arg)
		}
		return s.set(config.WithMaxWidth(k))
	case "mode":
		return s.set(config.WithMode(config.Mode(arg)))
	case "format":
		return s.set(config.WithFormat(config.Format(arg)))
	case "spans":
		on, err := parseSwitch(arg)
		if err != nil {
			return err
		}
		return s.set(config.WithSpans(on))
	case "count":
		on, err := parseSwitch(arg)
		if err != nil {
			return err
		}
		s.count = on
		return nil
	default:
		return fmt.Errorf("unknown command %q, type :help", ":"+name)
	}
}

// set applies opt if the result is still a valid config.
func (s *session) set(opt config.Option) error {
	next := s.cfg.Apply(opt)
	if err := next.Validate(); err != nil {
		return err
	}
	s.cfg = next
	s.log.event("ConfigChanged", s.cfg)
	return nil
}

// parseSwitch accepts on/off.
func parseSwitch(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}
