package cli

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/nauticalab/envfile-engine/internal/dotenv"
	"github.com/nauticalab/envfile-engine/internal/envfile"
)

// GenerateOptions holds configuration for the generate command
type GenerateOptions struct {
	Path    string
	Output  string // empty prints to stdout
	Include []string
	Exclude []string
	NoSort  bool
	Verbose bool
}

// GenerateRun re-serializes an env file: parse (with expansion), filter,
// sort, and emit canonical KEY=VALUE text.
func GenerateRun(opts GenerateOptions) {
	fs := afero.NewOsFs()
	env := loadEnvironment(opts.Path, fs, envfile.OSEnv{})

	genOpts := dotenv.NewGenerateOptions(env)
	if len(opts.Include) > 0 {
		genOpts.Include = opts.Include
	}
	genOpts.Exclude = opts.Exclude
	genOpts.Sort = !opts.NoSort

	content := dotenv.Generate(genOpts)

	if opts.Output == "" {
		fmt.Println(content)
		return
	}

	if content != "" {
		content += "\n"
	}
	if err := afero.WriteFile(fs, opts.Output, []byte(content), 0o644); err != nil {
		fail("failed to write %s: %v", opts.Output, err)
	}
	if opts.Verbose {
		fmt.Printf("%s wrote %s\n", successMark("✓"), opts.Output)
	}
}
