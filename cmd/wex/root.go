package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wexlang/wex/internal/ast"
	"github.com/wexlang/wex/internal/parser"
)

var (
	// Global flags
	fullForm  bool
	inputFile string
)

var rootCmd = &cobra.Command{
	Use:   "wex [expression...]",
	Short: "wex - Wolfram-style expression parser",
	Long: `wex parses expressions written in Wolfram-language ("Mathematica")
syntax and prints their canonical form.

Positional arguments are joined into a single expression:

  wex '2x + 1'            Plus[Times[2, x], 1]
  wex -F '{1, 2}'         [List, 1, 2]
  wex -f input.m          parse a file, using its path in diagnostics

Parsing recognizes arithmetic, logical and relational operators, implicit
multiplication, lists, function application, [[...]] indexing, and ;; span
syntax. No evaluation is performed; wex only builds and prints the tree.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if inputFile != "" {
			data, err := os.ReadFile(inputFile)
			if err != nil {
				return err
			}
			return run(string(data), inputFile)
		}
		if len(args) == 0 {
			fmt.Println("nothing to do")
			return nil
		}
		return run(strings.Join(args, " "), "<expr>")
	},
}

// run parses one input and prints the selected serialization, or the
// rendered diagnostic on stderr
func run(source, label string) error {
	expr, diag := parser.Parse(source, label)
	if diag != nil {
		fmt.Fprintln(os.Stderr, diag.Render())
		return diag
	}
	if fullForm {
		fmt.Println(ast.FullForm(expr))
	} else {
		fmt.Println(ast.Pretty(expr))
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fullForm, "full", "F", false, "print the full (Lisp) form instead of the pretty form")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read the expression from a file")
	rootCmd.SilenceErrors = true
}
