package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Build-time variables (set by the build system via -ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
	goVersion = runtime.Version()
)

var (
	// Global flags (available to all commands)
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "envfile",
	Short: "Parse, validate, and generate .env configuration files",
	Long: `envfile is a pipeline for .env-style configuration files.

It parses key/value definitions with quoting, line continuations, and
variable expansion; validates and type-coerces values against a declarative
schema; and serializes mappings back to canonical .env text. An HTTP mode
exposes the same pipeline as a service.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands to root
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// envPath returns the positional env file argument, defaulting to .env.
func envPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ".env"
}
