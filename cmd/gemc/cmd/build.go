package cmd

import (
	"os/exec"

	"github.com/cwbudde/gemc/internal/driver"
	"github.com/spf13/cobra"
)

var (
	buildClean     bool
	buildKeepCpp   bool
	buildTypeCheck bool
	buildCxx       string
)

var buildCmd = &cobra.Command{
	Use:   "build [file.gem]",
	Short: "Compile and run a Gem source file",
	Long: `Build lexes, parses, (optionally) type-checks, and lowers a .gem file to
C++, then invokes the system g++ to compile and run it.

Examples:
  # Build and run a program
  gemc build hello.gem

  # Keep the generated .cpp alongside the binary
  gemc build hello.gem --keep-cpp

  # Run the partial type checker before emitting
  gemc build hello.gem --type-check

  # Remove previously generated artifacts instead of building
  gemc build examples --clean`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "remove previously generated .cpp/.out artifacts under the given directory")
	buildCmd.Flags().BoolVar(&buildKeepCpp, "keep-cpp", false, "keep the generated .cpp file after a successful build")
	buildCmd.Flags().BoolVar(&buildTypeCheck, "type-check", false, "run the partial type checker before emitting")
	buildCmd.Flags().StringVar(&buildCxx, "cxx", "", "host C++ compiler to invoke (default: g++)")
}

func runBuild(_ *cobra.Command, args []string) error {
	path := args[0]

	if buildClean {
		return driver.Clean(path)
	}

	cxx := buildCxx
	if cxx == "" {
		cxx = "g++"
	}
	if _, err := exec.LookPath(cxx); err != nil {
		exitWithError("%s not found on PATH", cxx)
	}

	return driver.Build(path, driver.Options{
		KeepCpp:   buildKeepCpp,
		TypeCheck: buildTypeCheck,
		CXX:       buildCxx,
	})
}
