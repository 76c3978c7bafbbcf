package main

import (
	"fmt"
	"os"

	"github.com/pep299/text-summarizer/internal/cli"
)

func main() {
	if err := cli.ExecuteAnalyze(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
