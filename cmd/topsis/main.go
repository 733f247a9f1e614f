package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0 // Ranking completed and the output file was written
	ExitError   = 1 // Validation or runtime failure
	ExitUsage   = 2 // Wrong command-line invocation
)

// UsageError indicates a wrong command-line invocation, as opposed to a
// validation or runtime failure.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			os.Exit(ExitUsage)
		}
		os.Exit(ExitError)
	}
}
