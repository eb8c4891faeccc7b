package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/envfile-engine/internal/cli"
)

var (
	// Validate command flags
	validateSchemaPath string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an env file against a schema",
	Long: `Validate an env file against a schema document and print the typed
result.

The schema (YAML or JSON) declares required keys and per-variable types:

  required:
    - DATABASE_URL
  variables:
    PORT:
      type: number
      default: 3000

Every violation is reported, not just the first.

Examples:
  envfile validate --schema schema.yaml
  envfile validate staging.env --schema schema.json`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.ValidateRun(cli.ValidateOptions{
			Path:       envPath(args),
			SchemaPath: validateSchemaPath,
			Verbose:    verbose,
		})
	},
}

func init() {
	// Validate command specific flags
	validateCmd.Flags().StringVarP(&validateSchemaPath, "schema", "s", "", "Schema document (YAML or JSON)")
}
