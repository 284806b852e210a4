// Package driver orchestrates the full gemc pipeline end to end: lex,
// parse, an optional type-check pass, emit, write the translation unit,
// invoke the host C++ compiler, and run the resulting binary. It is the
// one place that talks to the outside world (spec.md §6): the
// filesystem, a PATH lookup for the C++ toolchain, and process
// execution.
package driver

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cwbudde/gemc/internal/emitter"
	"github.com/cwbudde/gemc/internal/errors"
	"github.com/cwbudde/gemc/internal/lexer"
	"github.com/cwbudde/gemc/internal/parser"
	"github.com/cwbudde/gemc/internal/semantic"
)

// Options controls a single Build invocation.
type Options struct {
	Clean     bool   // remove previously generated .cpp/.out artifacts instead of building
	KeepCpp   bool   // keep the generated .cpp file after a successful host compile
	TypeCheck bool   // run the partial type checker before emitting (off by default, spec.md §7)
	CXX       string // host C++ compiler; defaults to "g++" (spec.md §6)
}

func (o Options) compiler() string {
	if o.CXX == "" {
		return "g++"
	}
	return o.CXX
}

// Build runs the full pipeline against the .gem file at path, printing
// the `Compiling`/`Running`/`Failed` diagnostic lines spec.md §6
// prescribes. The host binary's exit code is printed in the `Running`
// line; a non-zero code does not make Build return an error (see
// hostRun). With opts.Clean set, Build calls Clean(path) instead.
func Build(path string, opts Options) error {
	if opts.Clean {
		return Clean(path)
	}

	fmt.Printf("Compiling %s...\n", path)
	log.Printf("[DEBUG] reading %s", path)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Failed %s\n", path)
		return err
	}

	p := parser.New(lexer.New(string(source)), string(source), path)
	prog := p.ParseProgram()
	if d := p.Err(); d != nil {
		fmt.Printf("Failed %s\n", path)
		return d
	}
	log.Printf("[DEBUG] parsed %d top-level expressions", len(prog.Exprs))

	if opts.TypeCheck {
		if d := semantic.New(p.State, string(source), path).Check(prog); d != nil {
			fmt.Printf("Failed %s\n", path)
			return d
		}
		log.Printf("[DEBUG] type check passed")
	}

	cppText, d := emitter.New(string(source), path).Emit(prog)
	if d != nil {
		fmt.Printf("Failed %s\n", path)
		return d
	}

	stem := strings.TrimSuffix(path, filepath.Ext(path))
	cppPath := stem + ".cpp"
	outPath := stem + ".out"

	if err := os.WriteFile(cppPath, []byte(cppText), 0o644); err != nil {
		fmt.Printf("Failed %s\n", path)
		return err
	}
	log.Printf("[DEBUG] wrote %s", cppPath)

	if err := hostCompile(opts.compiler(), cppPath, outPath, path); err != nil {
		return err
	}

	if !opts.KeepCpp {
		_ = os.Remove(cppPath)
	}

	return hostRun(outPath, path)
}

func hostCompile(cxx, cppPath, outPath, displayPath string) error {
	cmd := exec.Command(cxx, cppPath, "-o", outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("Failed %s\n", displayPath)
		return errors.NewHostCompileError(displayPath, stderr.String())
	}
	return nil
}

// hostRun executes the compiled binary and prints spec.md §6's
// diagnostic lines. A non-zero exit from the binary is reported but
// deliberately does not itself fail Build's return value: spec.md §7
// documents this as a known quirk of the current driver ("host-tool
// failures... do not leave the program itself in a failure exit
// status").
func hostRun(outPath, displayPath string) error {
	abs := outPath
	if !filepath.IsAbs(abs) {
		abs = "./" + abs
	}

	cmd := exec.Command(abs)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	exitCode := 0
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if runErr != nil {
		return errors.NewHostRunError(displayPath, runErr.Error())
	}

	fmt.Printf("Running %s (exit code: %d)\n", displayPath, exitCode)
	os.Stdout.WriteString(stdout.String())

	if exitCode != 0 {
		fmt.Printf("Failed %s\n", displayPath)
		os.Stderr.WriteString(stderr.String())
	}
	return nil
}

// Clean removes previously generated .cpp/.out artifacts directly inside
// dir (the CLI's `gemc build examples --clean` passes the examples
// directory), using filepath.Glob rather than shelling out to `rm -rf`.
// Subdirectories of dir are not searched.
func Clean(dir string) error {
	for _, pattern := range []string{"*.cpp", "*.out"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return err
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
				return err
			}
			fmt.Printf("removed %s\n", m)
		}
	}
	return nil
}
