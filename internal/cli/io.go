package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readInput returns the document text from path, or from standard input
// when path is empty. A missing file is an InputNotFoundError.
func readInput(path string) (string, error) {
	if path == "" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Reading from standard input (Ctrl-D to finish)...")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &InputNotFoundError{Path: path}
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes text to path, confirming on stdout, or prints it to
// stdout when path is empty. label names the artifact in the confirmation
// line ("Summary", "Analysis").
func writeOutput(path, text, label string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}
	fmt.Printf("%s written to %s\n", label, path)
	return nil
}
