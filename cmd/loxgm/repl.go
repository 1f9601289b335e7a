package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loxgm/loxgm/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Lox shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.New().Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
	rootCmd.RunE = replCmd.RunE
}
