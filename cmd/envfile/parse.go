package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/envfile-engine/internal/cli"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an env file and print the expanded variables",
	Long: `Parse an env file and print every variable after expansion, in the
order keys were first assigned.

Variable references (${NAME} and $NAME) resolve against earlier keys in the
file, then against the process environment.

Examples:
  envfile parse
  envfile parse config/production.env`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.ParseRun(cli.ParseOptions{
			Path:    envPath(args),
			Verbose: verbose,
		})
	},
}
