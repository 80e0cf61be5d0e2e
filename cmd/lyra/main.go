// The lyra executable is a thin wrapper around the front end: it loads a
// source file or an inline string, hands it to the parser, and exits
// non-zero when diagnostics were reported. Evaluation is not implemented
// yet, so `run` stops after building the syntax tree.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyra-lang/lyra/pkg/compiler/lexer"
	"github.com/lyra-lang/lyra/pkg/compiler/parser"
	"github.com/lyra-lang/lyra/pkg/compiler/printer"
)

var evalSource string

// errParseFailed signals a non-zero exit after diagnostics were already
// rendered to stderr; it must not be printed again.
var errParseFailed = errors.New("source had errors")

func main() {
	root := &cobra.Command{
		Use:           "lyra",
		Short:         "The Lyra programming language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Parse and run a Lyra source file or inline string",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	runCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "inline source to use instead of a file")

	tokensCmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream for a source file or inline string",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tokens,
	}
	tokensCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "inline source to use instead of a file")

	astCmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the syntax tree for a source file or inline string",
		Args:  cobra.MaximumNArgs(1),
		RunE:  printAST,
	}
	astCmd.Flags().StringVarP(&evalSource, "eval", "e", "", "inline source to use instead of a file")

	root.AddCommand(runCmd, tokensCmd, astCmd)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errParseFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func loadSource(args []string) (source, filename string, err error) {
	switch {
	case evalSource != "" && len(args) > 0:
		return "", "", fmt.Errorf("pass either a file or --eval, not both")
	case evalSource != "":
		return evalSource, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("no input: pass a file or --eval")
}

func run(cmd *cobra.Command, args []string) error {
	source, filename, err := loadSource(args)
	if err != nil {
		return err
	}

	p := parser.NewWithSink(source, filename, os.Stderr)
	p.Parse()
	if len(p.Diagnostics()) > 0 {
		return errParseFailed
	}
	return nil
}

func printAST(cmd *cobra.Command, args []string) error {
	source, filename, err := loadSource(args)
	if err != nil {
		return err
	}

	p := parser.NewWithSink(source, filename, os.Stderr)
	stmts := p.Parse()
	fmt.Print(printer.Print(stmts))
	if len(p.Diagnostics()) > 0 {
		return errParseFailed
	}
	return nil
}

func tokens(cmd *cobra.Command, args []string) error {
	source, _, err := loadSource(args)
	if err != nil {
		return err
	}

	s := lexer.NewScanner(source)
	for {
		tok := s.Next()
		if tok.Kind == lexer.KindEOF {
			return nil
		}
		fmt.Printf("%s at %d:%d\n", tok, tok.Line, tok.Column)
	}
}
