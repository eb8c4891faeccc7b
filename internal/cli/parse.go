package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/envfile"
)

// ParseOptions holds configuration for the parse command
type ParseOptions struct {
	Path    string
	Verbose bool
}

// ParseRun parses an env file and prints the expanded variables in
// insertion order.
func ParseRun(opts ParseOptions) {
	fs := afero.NewOsFs()
	env := loadEnvironment(opts.Path, fs, envfile.OSEnv{})

	for _, key := range env.Keys() {
		fmt.Printf("%s=%s\n", keyStyle(key), env.Get(key))
	}

	if opts.Verbose {
		fmt.Printf("\n%s %d variable(s) parsed from %s\n", successMark("✓"), env.Len(), opts.Path)
	}
}
