package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/gemc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gemc",
	Short: "Compiler for the Gem toy language",
	Long: `gemc compiles Gem, a small class-oriented language, to C++.

A .gem source file is lexed, parsed into an AST, optionally type-checked,
and lowered to a C++ translation unit, which is then handed to the
system's g++ for native compilation and execution.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		driver.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
