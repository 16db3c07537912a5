package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/wexlang/wex/internal/ast"
	"github.com/wexlang/wex/internal/parser"
)

const (
	historyFile = ".wex_history"
	prompt      = "wex> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse loop",
	Long: `Read expressions line by line, printing the parsed form of each.
Ctrl+C cancels input, Ctrl+D exits. Type :quit to exit, :full to toggle
full-form output.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func runRepl() {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			// Ctrl+D or Ctrl+C
			fmt.Println()
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit", ":q":
				return
			case ":full":
				fullForm = !fullForm
				fmt.Printf("full form %v\n", onOff(fullForm))
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		expr, diag := parser.Parse(line, "<repl>")
		if diag != nil {
			fmt.Fprintln(os.Stderr, diag.Render())
			continue
		}
		if fullForm {
			fmt.Println(ast.FullForm(expr))
		} else {
			fmt.Println(ast.Pretty(expr))
		}
		ln.AppendHistory(line)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(replCmd)
}
