package cli

import (
	"errors"
	"fmt"
)

// Terminal failure modes. Every one aborts the current invocation with a
// one-line diagnostic; nothing is retried and no partial output is
// written.
var (
	// ErrEmptyInput is reported when no sentences survive splitting and
	// filtering.
	ErrEmptyInput = errors.New("no sentences found in input text")

	// ErrNoInputText is reported by the analyzer for empty or
	// whitespace-only input.
	ErrNoInputText = errors.New("no text provided for analysis")

	// ErrUnsupportedMethod is reported for an unknown summarization
	// strategy.
	ErrUnsupportedMethod = errors.New("unknown method")
)

// InputNotFoundError reports a missing input file.
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("File '%s' not found", e.Path)
}
