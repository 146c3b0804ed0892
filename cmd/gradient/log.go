package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// logHook writes verbose diagnostics: a timestamped event header followed
// by the event fields as YAML. A nil *logHook discards everything.
type logHook struct {
	out io.Writer
	now func() time.Time
}

// newLogHook returns a hook writing to w, or nil when verbose is off.
func newLogHook(w io.Writer, verbose bool) *logHook {
	if !verbose {
		return nil
	}
	return &logHook{out: w, now: time.Now}
}

// event logs name and, if non-nil, fields.
func (h *logHook) event(name string, fields any) {
	if h == nil {
		return
	}
	fmt.Fprintf(h.out, "%s>>> [%s]: %s%s\n",
		colorDim, name, h.now().Format("15:04:05.000"), colorReset)
	if fields == nil {
		return
	}
	data, err := yaml.Marshal(fields)
	if err != nil {
		fmt.Fprintf(h.out, "(failed to marshal: %v)\n", err)
		return
	}
	fmt.Fprint(h.out, string(data))
}
