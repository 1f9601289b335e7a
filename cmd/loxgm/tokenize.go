package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxgm/loxgm/lexer"
)

var tokenizeEvalExpr string

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a Lox file or expression and print the token stream",
	Long: `Tokenize a Lox program and print the resulting tokens, one per line.

Examples:
  loxgm tokenize hello.lox
  loxgm tokenize -e "var x = 42;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: tokenizeScript,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func tokenizeScript(cmd *cobra.Command, args []string) error {
	src, err := readSource(tokenizeEvalExpr, args)
	if err != nil {
		return err
	}
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), lexErr.Error())
		os.Exit(65)
	}
	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok.String())
	}
	return nil
}

func readSource(evalExpr string, args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline source")
}
