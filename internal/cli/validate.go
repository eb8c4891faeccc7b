package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
	"github.com/nauticalab/envfile-engine/internal/envfile"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	Path       string
	SchemaPath string
	Verbose    bool
}

// ValidateRun validates an env file against a schema document and prints
// either the typed result or the complete violation list.
func ValidateRun(opts ValidateOptions) {
	fs := afero.NewOsFs()

	env := loadEnvironment(opts.Path, fs, envfile.OSEnv{})
	schemaDoc := loadSchema(opts.SchemaPath, fs)
	if schemaDoc == nil {
		fail("a schema is required: pass --schema <file>")
	}

	typed, err := dotenv.Validate(env, schemaDoc)
	if err != nil {
		var validation *dotenv.ValidationError
		if errors.As(err, &validation) {
			fmt.Fprintf(os.Stderr, "%s %s does not satisfy %s:\n",
				errorMark("✗"), opts.Path, opts.SchemaPath)
			for _, violation := range validation.Violations {
				fmt.Fprintf(os.Stderr, "  - %s\n", violation)
			}
			os.Exit(1)
		}
		fail("%v", err)
	}

	for _, key := range typed.Keys() {
		fmt.Printf("%s=%v\n", keyStyle(key), typed.Get(key))
	}

	if opts.Verbose {
		for _, key := range env.Keys() {
			if _, declared := schemaDoc.Variables[key]; !declared {
				fmt.Fprintf(os.Stderr, "%s %s is not declared in %s\n",
					warnMark("!"), key, opts.SchemaPath)
			}
		}
		fmt.Printf("\n%s %s satisfies %s\n", successMark("✓"), opts.Path, opts.SchemaPath)
	}
}
