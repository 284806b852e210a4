package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/parser"
	"github.com/cwbudde/gemc/internal/semantic"
	"github.com/spf13/cobra"
)

var typecheckCmd = &cobra.Command{
	Use:   "typecheck [file.gem]",
	Short: "Run the partial type checker against a Gem source file",
	Long: `Typecheck parses a .gem file and walks its class/function bodies with
the partial type checker, reporting the first TypeError or
NotYetImplemented diagnostic it finds. It does not emit or compile
anything.`,
	Args: cobra.ExactArgs(1),
	RunE: runTypecheck,
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

func runTypecheck(_ *cobra.Command, args []string) error {
	path := args[0]

	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	p := parser.New(lexer.New(string(source)), string(source), path)
	prog := p.ParseProgram()
	if d := p.Err(); d != nil {
		return d
	}

	if d := semantic.New(p.State, string(source), path).Check(prog); d != nil {
		return d
	}

	fmt.Printf("%s: no type errors\n", path)
	return nil
}
