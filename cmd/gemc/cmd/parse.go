package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/gemc/internal/ast"
	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file.gem]",
	Short: "Parse Gem source code and display the AST",
	Long: `Parse Gem source code and display the Abstract Syntax Tree (AST).

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.
Use --dump-ast to show the full tree structure instead of the
pretty-printed source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	if parseExpression {
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
		filename = "<eval>"
	} else if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
		filename = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
		filename = "<stdin>"
	}

	p := parser.New(lexer.New(input), input, filename)
	program := p.ParseProgram()

	if d := p.Err(); d != nil {
		fmt.Fprint(os.Stderr, d.Format())
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		for _, e := range program.Exprs {
			dumpASTNode(e, 0)
		}
	} else {
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node ast.Expr, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.ClassDecl:
		fmt.Printf("%sClassDecl: %s (base=%q)\n", pad, n.Name, n.BaseClass)
		for _, m := range n.Methods {
			dumpASTNode(m, indent+1)
		}
	case *ast.ClassFunction:
		fmt.Printf("%sClassFunction: %s access=%s virtual=%v override=%v external=%v\n",
			pad, n.Name, n.Access, n.IsVirtual, n.IsOverride, n.IsExternal)
		dumpASTNode(n.Body, indent+1)
	case *ast.FuncDecl:
		fmt.Printf("%sFuncDecl: %s -> %s\n", pad, n.Name, n.ReturnType.String())
		dumpASTNode(n.Body, indent+1)
	case *ast.Block:
		fmt.Printf("%sBlock (%d exprs)\n", pad, len(n.Exprs))
		for _, e := range n.Exprs {
			dumpASTNode(e, indent+1)
		}
	case *ast.VarDecl:
		kw := "var"
		if n.Constant {
			kw = "const"
		}
		fmt.Printf("%sVarDecl(%s): %s: %s\n", pad, kw, n.Name, n.VarType.String())
		dumpASTNode(n.Value, indent+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		if n.Value != nil {
			dumpASTNode(n.Value, indent+1)
		}
	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp\n", pad)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.NewExpr:
		fmt.Printf("%sNewExpr: %s (%d args)\n", pad, n.ClassName, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.MemberExpr:
		fmt.Printf("%sMemberExpr: .%s\n", pad, n.Field)
		dumpASTNode(n.Object, indent+1)
	case *ast.MemberCallExpr:
		fmt.Printf("%sMemberCallExpr: ->%s\n", pad, n.Call.Name)
		dumpASTNode(n.Object, indent+1)
		for _, a := range n.Call.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.CallExpr:
		fmt.Printf("%sCallExpr: %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.InternalCallExpr:
		fmt.Printf("%sInternalCallExpr: %s (%d args)\n", pad, n.Name, len(n.Args))
		for _, a := range n.Args {
			dumpASTNode(a, indent+1)
		}
	case *ast.IntLiteral:
		fmt.Printf("%sIntLiteral: %d\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Name)
	case *ast.Empty:
		fmt.Printf("%sEmpty\n", pad)
	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}
