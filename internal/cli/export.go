package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/envfile"
)

// ExportOptions holds configuration for the export command
type ExportOptions struct {
	Path string

	// SkipExisting leaves out variables already present in the process
	// environment, mirroring Populate's no-override behavior.
	SkipExisting bool
}

// ExportRun prints POSIX export statements for an env file, suitable for
// eval in a shell:
//
//	eval "$(envfile export .env)"
//
// The process cannot mutate its parent shell, so this is the populate path
// for interactive use.
func ExportRun(opts ExportOptions) {
	store := envfile.OSEnv{}
	env := loadEnvironment(opts.Path, afero.NewOsFs(), store)

	for _, key := range env.Keys() {
		if opts.SkipExisting && store.Has(key) {
			continue
		}
		fmt.Printf("export %s=%s\n", key, shellQuote(env.Get(key)))
	}
}

// shellQuote single-quotes a value for POSIX shells. Embedded single
// quotes use the '\'' idiom.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
