package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/cmpkit/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := &logging.Logger{Out: os.Stderr}

	config, err := cli.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "failed to load catalogsort configuration", logging.ErrField(err))
		os.Exit(1)
	}
	logger.Level = logging.Level(config.LogLevel)

	cmd := cli.NewRootCommand(cli.Options{
		Config: config,
		Logger: logger,
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Error(ctx, "catalogsort failed", logging.ErrField(err))
		cancel()
		os.Exit(1)
	}
}
