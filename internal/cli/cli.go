// Package cli implements the logic behind the envfile commands. Each
// command has an Options struct and a Run function; the cobra layer in
// cmd/envfile stays a thin flag-parsing shell around these.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
	"github.com/nauticalab/envfile-engine/internal/envfile"
	"github.com/nauticalab/envfile-engine/internal/schema"
)

var (
	successMark = color.New(color.FgGreen).SprintFunc()
	errorMark   = color.New(color.FgRed).SprintFunc()
	warnMark    = color.New(color.FgYellow).SprintFunc()
	keyStyle    = color.New(color.FgCyan).SprintFunc()
)

// fail prints message to stderr and exits non-zero.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorMark("✗"), fmt.Sprintf(format, args...))
	os.Exit(1)
}

// loadEnvironment reads and parses an env file with the process environment
// as the expansion fallback.
func loadEnvironment(path string, fs afero.Fs, store envfile.EnvStore) *dotenv.Environment {
	result, err := envfile.Load(envfile.LoadOptions{Path: path, Fs: fs, Store: store})
	if err != nil {
		fail("%v", err)
	}
	return result.Environment
}

// loadSchema reads a schema document, or returns nil when path is empty.
func loadSchema(path string, fs afero.Fs) *dotenv.Schema {
	if path == "" {
		return nil
	}
	doc, err := schema.Load(fs, path)
	if err != nil {
		fail("%v", err)
	}
	return doc
}
