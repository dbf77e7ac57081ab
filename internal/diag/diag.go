// Package diag builds the leveled logger carrying per-unit diagnostics.
package diag

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New creates a diagnostic hclog.Logger writing to w. Debug output is
// enabled only when debug is set.
func New(name string, debug bool, w io.Writer) hclog.Logger {
	level := hclog.Info
	if debug {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: w,
	})
}
