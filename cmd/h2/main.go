// Command h2 parses h2 mission scripts and prints their syntax tree.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/h2-lang/h2/parser"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports the errors that were not written as
// diagnostics.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var perr *parser.Error
	if !errors.Is(err, errDiagnostics) && !errors.As(err, &perr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
