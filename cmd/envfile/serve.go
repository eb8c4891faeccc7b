package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/envfile-engine/internal/cli"
)

var (
	// Serve command flags
	servePort  int
	serveToken string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the envfile HTTP API",
	Long: `Run an HTTP service exposing the pipeline: POST /api/v1/parse,
/api/v1/validate, and /api/v1/render, plus public health and version
endpoints.

A bearer token (--token or ENVFILE_API_TOKEN) protects the pipeline
endpoints when set.

Examples:
  envfile serve --port 8080
  envfile serve --port 8080 --token sekrit`,
	Run: func(cmd *cobra.Command, args []string) {
		cli.ServeRun(cli.ServeOptions{
			Port:      servePort,
			Token:     serveToken,
			Version:   version,
			GitCommit: gitCommit,
			BuildTime: buildTime,
			GoVersion: goVersion,
		})
	},
}

func init() {
	// Serve command specific flags
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveToken, "token", "", "Bearer token required on pipeline endpoints")
}
