package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxgm/loxgm/file"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox file or an inline expression",
	Long: `Execute a Lox program from a file or inline source.

Examples:
  # Run a script file
  loxgm run hello.lox

  # Evaluate inline source
  loxgm run -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline source instead of reading from a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	var code file.ExitCode
	switch {
	case evalExpr != "":
		code = file.RunSource(evalExpr, cmd.OutOrStdout(), os.Stdin)
	case len(args) == 1:
		code = file.Run(args[0], cmd.OutOrStdout())
	default:
		return fmt.Errorf("either provide a file path or use -e for inline source")
	}
	if code != file.ExitOK {
		os.Exit(int(code))
	}
	return nil
}
