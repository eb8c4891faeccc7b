package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/envfile-engine/internal/cli"
)

var (
	// Generate command flags
	generateOutput  string
	generateInclude []string
	generateExclude []string
	generateNoSort  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Re-serialize an env file as canonical .env text",
	Long: `Parse an env file (expanding references) and emit it back as canonical
KEY=VALUE text: keys sorted, values quoted and escaped where needed.

Examples:
  envfile generate
  envfile generate .env --exclude SECRET_KEY --output .env.example
  envfile generate --include HOST --include PORT`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.GenerateRun(cli.GenerateOptions{
			Path:    envPath(args),
			Output:  generateOutput,
			Include: generateInclude,
			Exclude: generateExclude,
			NoSort:  generateNoSort,
			Verbose: verbose,
		})
	},
}

func init() {
	// Generate command specific flags
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write to a file instead of stdout")
	generateCmd.Flags().StringArrayVar(&generateInclude, "include", nil, "Only emit these keys (repeatable)")
	generateCmd.Flags().StringArrayVar(&generateExclude, "exclude", nil, "Drop these keys (repeatable)")
	generateCmd.Flags().BoolVar(&generateNoSort, "no-sort", false, "Keep file order instead of sorting keys")
}
