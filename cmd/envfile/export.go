package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/envfile-engine/internal/cli"
)

var (
	// Export command flags
	exportSkipExisting bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Print POSIX export statements for an env file",
	Long: `Print the parsed variables as POSIX export statements for shell eval:

  eval "$(envfile export .env)"

With --skip-existing, variables already set in the current environment are
left alone.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cli.ExportRun(cli.ExportOptions{
			Path:         envPath(args),
			SkipExisting: exportSkipExisting,
		})
	},
}

func init() {
	// Export command specific flags
	exportCmd.Flags().BoolVar(&exportSkipExisting, "skip-existing", false, "Do not export variables already set in the environment")
}
