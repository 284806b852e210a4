package driver

import (
	"log"
	"os"

	"github.com/hashicorp/logutils"
)

// SetVerbose wires the standard logger through a logutils.LevelFilter,
// the same way qjcg-driving/main.go raises its minimum level from INFO
// to DEBUG under a `-d` flag. gemc's driver logs DEBUG-level progress
// lines (file read, parse, type check, emit); they're filtered out
// unless --verbose raises the floor.
func SetVerbose(verbose bool) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN"},
		MinLevel: logutils.LogLevel("WARN"),
		Writer:   os.Stderr,
	}
	if verbose {
		filter.MinLevel = logutils.LogLevel("DEBUG")
	}
	log.SetOutput(filter)
	log.SetFlags(0)
}
