package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/parser"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox file or expression and print the AST",
	Long: `Parse a Lox program and print the resulting AST in a fully
parenthesized form. Collects every parse error it can recover from
via synchronize, rather than stopping at the first one.

Examples:
  loxgm parse hello.lox
  loxgm parse -e "1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline source instead of reading from a file")
}

func parseScript(cmd *cobra.Command, args []string) error {
	src, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), lexErr.Error())
		os.Exit(65)
	}
	program, errs := parser.ParseAll(tokens)
	for _, e := range errs {
		fmt.Fprintln(cmd.OutOrStdout(), e.Error())
	}
	if len(errs) > 0 {
		os.Exit(65)
	}
	fmt.Fprint(cmd.OutOrStdout(), ast.Print(program))
	return nil
}
