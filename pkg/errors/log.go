package errors

import (
	"fmt"
	"os"
)

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a FormError to stderr.
func (h *LogHandler) HandleError(err *FormError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[formbind error] %s [%s]", err.Op, err.Kind)
		if err.Field != "" {
			fmt.Fprintf(os.Stderr, " field=%s", err.Field)
		}
		fmt.Fprintf(os.Stderr, ": %v\n", err.Err)
		if !err.Timestamp.IsZero() {
			fmt.Fprintf(os.Stderr, "at %s\n", err.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"))
		}
	} else {
		fmt.Fprintf(os.Stderr, "[formbind error] %s: %v\n", err.Op, err.Err)
	}
}
