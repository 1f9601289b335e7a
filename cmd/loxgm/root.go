package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "loxgm",
	Short: "A tree-walking interpreter for Lox",
	Long: `loxgm is a Go implementation of a tree-walking interpreter for Lox,
a small dynamically-typed scripting language: C-like syntax, lexical
scoping, first-class functions limited to a flat built-in table, and
no classes, closures, or module system.

Run with no arguments to start the interactive REPL, or "loxgm run
<file>" to execute a script.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("loxgm version {{.Version}}\n"))
}
