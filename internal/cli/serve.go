package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nauticalab/envfile-engine/internal/api"
)

// ServeOptions holds configuration for the serve command
type ServeOptions struct {
	Port  int
	Token string

	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// ServeRun starts the HTTP API server and blocks until SIGINT/SIGTERM.
func ServeRun(opts ServeOptions) {
	// Token can also come from the environment so it stays out of argv.
	if opts.Token == "" {
		opts.Token = os.Getenv("ENVFILE_API_TOKEN")
	}

	server := api.NewServer(api.ServerConfig{
		Port:      opts.Port,
		Token:     opts.Token,
		Version:   opts.Version,
		GitCommit: opts.GitCommit,
		BuildTime: opts.BuildTime,
		GoVersion: opts.GoVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.StartWithContext(ctx); err != nil {
		fail("server error: %v", err)
	}
}
