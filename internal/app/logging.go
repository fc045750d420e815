package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns the structured logger shared by the commands.
func NewLogger(w io.Writer, prefix string, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           level,
		Prefix:          prefix,
	})
}
