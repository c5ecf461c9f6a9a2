package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/perfkit/hwbench/internal/models"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // benchmarks ran and every enabled component was scored
	ExitPartial = 1 // a result was produced but one or more components were skipped
	ExitError   = 2 // configuration or runtime error
)

// PartialResultError indicates that benchmarking produced a usable
// result, but one or more enabled components failed and were skipped.
type PartialResultError struct {
	Skipped []models.Component
}

func (e *PartialResultError) Error() string {
	names := make([]string, len(e.Skipped))
	for i, c := range e.Skipped {
		names[i] = c.String()
	}
	return fmt.Sprintf("result written, but %d component(s) were skipped: %s",
		len(e.Skipped), strings.Join(names, ", "))
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var partialErr *PartialResultError
		if errors.As(err, &partialErr) {
			os.Exit(ExitPartial)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
