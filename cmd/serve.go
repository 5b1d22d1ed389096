package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-recursive-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve scene renders over HTTP until interrupted.
func Serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return server.NewServer(ctx.Int("port"), ctx.Int("max-renders")).Start(runCtx)
}
