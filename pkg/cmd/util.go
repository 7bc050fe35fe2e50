package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-aexp/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Read a given set of source files, exiting if any cannot be read.
func readSourceFiles(filenames []string) []source.File {
	srcfiles, err := source.ReadFiles(filenames...)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return srcfiles
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span = err.Span()
		line = err.FirstEnclosingLine()
	)
	// Determine indent of highlight within line
	indent := span.Start() - line.Start()
	// Determine width of highlight, clamped to the line end
	width := max(1, min(span.Length(), line.Length()-indent))
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", indent))
	// Print highlight
	fmt.Println(strings.Repeat("^", width))
}
